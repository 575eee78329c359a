package blob

import (
	"context"
	"sync"
)

// MemoryMedium is an in-process medium used by tests and throwaway setups.
type MemoryMedium struct {
	mu   sync.RWMutex
	docs map[string][]byte

	// FailSet, when set, makes every Set call return this error. Tests use
	// it to exercise the store's degrade-on-write-failure path.
	FailSet error
}

// NewMemoryMedium creates an empty MemoryMedium.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{docs: make(map[string][]byte)}
}

// Get returns the document stored under name.
func (m *MemoryMedium) Get(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[name]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

// Set replaces the document stored under name.
func (m *MemoryMedium) Set(_ context.Context, name string, data []byte) error {
	if m.FailSet != nil {
		return m.FailSet
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.docs[name] = stored

	return nil
}
