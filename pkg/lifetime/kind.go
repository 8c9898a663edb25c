package lifetime

import (
	"errors"
	"fmt"
)

// Kind is the policy deciding how many store instances exist and who shares
// them.
type Kind string

const (
	// Transient builds a new instance on every resolution.
	Transient Kind = "transient"
	// Scoped builds one instance per request scope.
	Scoped Kind = "scoped"
	// Singleton builds one instance for the whole process.
	Singleton Kind = "singleton"
)

// ErrUnknownKind is returned for a tag outside the fixed set.
var ErrUnknownKind = errors.New("unknown lifetime kind")

// Kinds returns every supported kind.
func Kinds() []Kind {
	return []Kind{Transient, Scoped, Singleton}
}

// Parse validates a tag. Matching is case-sensitive.
func Parse(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Transient, Scoped, Singleton:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// String returns the tag.
func (k Kind) String() string { return string(k) }

// Description explains the resolution policy in plain words.
func (k Kind) Description() string {
	switch k {
	case Transient:
		return "A new instance is created every time one is requested"
	case Scoped:
		return "One instance is created per HTTP request"
	case Singleton:
		return "A single instance is shared by the whole application"
	}
	return "Unrecognized lifetime kind"
}
