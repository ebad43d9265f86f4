package storage

import "sync"

// MemoryStore is an in-memory Storage for tests and memory-only stores.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte

	// FailWrites makes Write return an error, for exercising best-effort
	// persistence paths.
	FailWrites error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

// Read returns the stored bytes for key.
func (s *MemoryStore) Read(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Write stores data under key.
func (s *MemoryStore) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.slots[key] = append([]byte(nil), data...)
	return nil
}
