package persist

import (
	"context"
	"sync"
)

// MemoryStorage keeps values for the lifetime of the process.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

func (s *MemoryStorage) GetString(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStorage) SetString(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStorage) Flush(context.Context) error { return nil }
func (s *MemoryStorage) Close() error                { return nil }
