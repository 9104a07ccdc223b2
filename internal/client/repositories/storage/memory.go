package storage

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/authpanel/internal/common"
)

type MemoryStore struct {
	mu    sync.RWMutex
	inner map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{inner: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.inner[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	s.inner[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Update(_ context.Context, key string, fn func(string) (string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.inner[key]
	if !ok {
		return common.ErrorNotFound
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	s.inner[key] = next
	return nil
}

// Len reports the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inner)
}
