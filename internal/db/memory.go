package db

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps analyses in memory. It backs the CLI and tests, and the
// server when no database URL is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[uuid.UUID]Analysis
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{analyses: make(map[uuid.UUID]Analysis)}
}

func (s *MemoryStore) SaveAnalysis(_ context.Context, a *Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[a.ID] = *a
	return nil
}

func (s *MemoryStore) GetAnalysis(_ context.Context, id uuid.UUID) (*Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.analyses[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *MemoryStore) ListAnalyses(_ context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	analyses := make([]Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		analyses = append(analyses, a)
	}
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})
	if len(analyses) > limit {
		analyses = analyses[:limit]
	}
	return analyses, nil
}

func (s *MemoryStore) DeleteAnalysis(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.analyses[id]; !ok {
		return fmt.Errorf("analysis not found: %s", id)
	}
	delete(s.analyses, id)
	return nil
}

func (s *MemoryStore) Close() {}
