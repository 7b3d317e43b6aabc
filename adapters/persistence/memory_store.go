package persistence

import (
	"context"
	"sync"

	"github.com/rosterhq/roster/internal/domain/portfolio"
)

// MemoryStore keeps the collection in process memory. It is the test
// backend and deep-copies on both sides so callers never alias its state.
type MemoryStore struct {
	mu         sync.RWMutex
	portfolios []portfolio.Portfolio
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{portfolios: []portfolio.Portfolio{}}
}

func (s *MemoryStore) LoadAll(ctx context.Context) ([]portfolio.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return portfolio.CloneAll(s.portfolios), nil
}

func (s *MemoryStore) SaveAll(ctx context.Context, portfolios []portfolio.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolios = portfolio.CloneAll(portfolios)
	return nil
}
