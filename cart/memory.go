package cart

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. It backs tests and single-node runs
// without Redis; carts vanish on restart, which matches their lifecycle.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(sessionID), nil
}

func (s *MemoryStore) Add(_ context.Context, sessionID string, itemID uint, quantity int) (Cart, error) {
	if err := validate(itemID, quantity); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = make(Cart)
		s.carts[sessionID] = c
	}
	c[itemID] += quantity
	return s.snapshot(sessionID), nil
}

func (s *MemoryStore) Remove(_ context.Context, sessionID string, itemID uint) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		delete(c, itemID)
	}
	return s.snapshot(sessionID), nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// snapshot copies the stored cart so callers cannot mutate shared state.
// Caller must hold s.mu.
func (s *MemoryStore) snapshot(sessionID string) Cart {
	out := make(Cart)
	for id, qty := range s.carts[sessionID] {
		out[id] = qty
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
