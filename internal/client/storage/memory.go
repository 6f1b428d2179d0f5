package storage

import (
	"context"
	"sync"
)

// MemoryEngine keeps everything in a map. It is used by tests and by the
// "memory" storage kind, where nothing survives the process.
type MemoryEngine struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{items: map[string]string{}}
}

func (m *MemoryEngine) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()
	return nil
}

func (m *MemoryEngine) GetString(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	v, ok := m.items[key]
	m.mu.RUnlock()
	return v, ok, nil
}

func (m *MemoryEngine) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryEngine) DeleteMany(_ context.Context, keys []string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.items, k)
	}
	m.mu.Unlock()
	return nil
}

func (m *MemoryEngine) Close() error { return nil }
