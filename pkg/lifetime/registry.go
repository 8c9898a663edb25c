// Package lifetime resolves order stores according to a lifetime kind.
//
// The store is registered once per kind in a godi collection, keyed by the
// kind's tag. Each incoming request opens a Scope that caches its scoped
// instance and is closed when the request ends.
package lifetime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/junioryono/godi/v4"

	"orderscope/pkg/logger"
	"orderscope/pkg/order"
)

var (
	// ErrScopeClosed is returned when resolving on a scope that has ended.
	ErrScopeClosed = errors.New("lifetime scope closed")
	// ErrNoScope is returned when a context carries no request scope.
	ErrNoScope = errors.New("no lifetime scope in context")
	// ErrRegistryClosed is returned when opening a scope after Close.
	ErrRegistryClosed = errors.New("lifetime registry closed")
)

// Factory builds a fresh store.
type Factory func() order.Store

// Registry resolves stores by lifetime kind.
type Registry struct {
	provider godi.Provider
	log      *logger.Logger
	closed   atomic.Bool
}

// NewRegistry registers factory under every kind and builds the provider.
func NewRegistry(factory Factory, log *logger.Logger) (*Registry, error) {
	ctor := func() order.Store { return factory() }

	services := godi.NewCollection()
	if err := services.AddTransient(ctor, godi.Name(string(Transient))); err != nil {
		return nil, fmt.Errorf("register %s: %w", Transient, err)
	}
	if err := services.AddScoped(ctor, godi.Name(string(Scoped))); err != nil {
		return nil, fmt.Errorf("register %s: %w", Scoped, err)
	}
	if err := services.AddSingleton(ctor, godi.Name(string(Singleton))); err != nil {
		return nil, fmt.Errorf("register %s: %w", Singleton, err)
	}

	provider, err := services.Build()
	if err != nil {
		return nil, fmt.Errorf("build provider: %w", err)
	}
	return &Registry{provider: provider, log: log}, nil
}

// Close disposes the provider and the singleton it owns. Call at process
// shutdown; later calls are no-ops.
func (r *Registry) Close(ctx context.Context) error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	r.log.Info(ctx, "closing lifetime registry")
	return r.provider.Close()
}

// NewScope opens a request scope bound to ctx.
func (r *Registry) NewScope(ctx context.Context) (*Scope, error) {
	if r.closed.Load() {
		return nil, ErrRegistryClosed
	}
	inner, err := r.provider.CreateScope(ctx)
	if err != nil {
		return nil, fmt.Errorf("create scope: %w", err)
	}
	return &Scope{inner: inner}, nil
}

// Scope wraps one request's godi scope.
type Scope struct {
	inner godi.Scope

	mu     sync.Mutex
	closed bool
}

// Resolve returns a store for kind following its policy.
func (s *Scope) Resolve(kind Kind) (order.Store, error) {
	if _, err := Parse(string(kind)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrScopeClosed
	}

	st, err := godi.ResolveKeyed[order.Store](s.inner, string(kind))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", kind, err)
	}
	return st, nil
}

// Pair resolves kind twice, as two independent consumers of the same
// dependency would.
func (s *Scope) Pair(kind Kind) (order.Store, order.Store, error) {
	first, err := s.Resolve(kind)
	if err != nil {
		return nil, nil, err
	}
	second, err := s.Resolve(kind)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// Close ends the scope and disposes its scoped instance. Closing twice is a
// no-op.
func (s *Scope) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.inner.Close()
}

type scopeKey struct{}

// WithScope attaches a request scope to ctx.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the request scope carried by ctx.
func ScopeFrom(ctx context.Context) (*Scope, error) {
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	if !ok || s == nil {
		return nil, ErrNoScope
	}
	return s, nil
}
