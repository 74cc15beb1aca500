package store

import "sync"

// MemoryAdapter keeps the blob in memory. Used by tests and as a fallback
// when no durable path is configured.
type MemoryAdapter struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

// Save stores a copy of the blob.
func (a *MemoryAdapter) Save(data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.data = append([]byte(nil), data...)
	return nil
}

// Load returns the last saved blob, or (nil, nil) when nothing was saved.
func (a *MemoryAdapter) Load() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.data == nil {
		return nil, nil
	}
	return append([]byte(nil), a.data...), nil
}
