// Package memory implements an in-memory order store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"orderscope/pkg/logger"
	"orderscope/pkg/order"
)

// Store provides an in-memory, append-only implementation of order.Store.
type Store struct {
	id  uuid.UUID
	log *logger.Logger

	mu     sync.RWMutex
	orders []order.Order
}

// New creates a store with a fresh random identity.
func New(log *logger.Logger) *Store {
	s := &Store{id: uuid.New(), log: log, orders: make([]order.Order, 0)}
	s.log.Debug(context.Background(), "order store created", "instance", s.id.String())
	return s
}

// Add appends the order.
func (s *Store) Add(ctx context.Context, o order.Order) {
	s.mu.Lock()
	s.orders = append(s.orders, o)
	n := len(s.orders)
	s.mu.Unlock()

	s.log.Debug(ctx, "order added", "instance", s.id.String(), "total", n)
}

// List returns the orders in insertion order.
func (s *Store) List(ctx context.Context) []order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Count returns the number of orders held.
func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Identity returns the instance ID assigned at construction.
func (s *Store) Identity() uuid.UUID {
	return s.id
}

var _ order.Store = (*Store)(nil)
