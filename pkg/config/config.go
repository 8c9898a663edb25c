// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the service settings.
type Config struct {
	HTTPAddr string
	LogLevel string

	OTELHost        string
	OTELProbability float64

	TLSCert string
	TLSKey  string

	ShutdownTimeout time.Duration
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads the settings from the environment. Unset variables take their
// defaults; malformed ones are an error.
func Load() (Config, error) {
	var c Config
	var err error

	c.HTTPAddr = getenv("HTTP_ADDR", ":8080")
	c.LogLevel = getenv("LOG_LEVEL", "info")

	c.OTELHost = getenv("OTEL_HOST", "")
	if c.OTELProbability, err = getenvFloat("OTEL_PROBABILITY", 1.0); err != nil {
		return Config{}, err
	}
	if c.OTELProbability < 0 || c.OTELProbability > 1 {
		return Config{}, errors.New("OTEL_PROBABILITY must be within [0,1]")
	}

	c.TLSCert = getenv("TLS_CERT", "")
	c.TLSKey = getenv("TLS_KEY", "")
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return Config{}, errors.New("TLS_CERT and TLS_KEY must be set together")
	}

	if c.ShutdownTimeout, err = getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	return c, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
