package store

import (
	"context"
	"sync"
)

// memKV is an in-process blob transport. Used by tests and by development
// setups without a Redis instance.
type memKV struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func (m *memKV) get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *memKV) set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.blobs[key] = cp
	return nil
}

func (m *memKV) del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

// Memory is an in-memory Store with an escape hatch for tests to plant raw
// blobs (e.g. corrupt payloads) before hydration.
type Memory struct {
	blobStore
	kvImpl *memKV
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	kvImpl := &memKV{blobs: make(map[string][]byte)}
	return &Memory{blobStore: blobStore{kv: kvImpl}, kvImpl: kvImpl}
}

// PutRaw writes an arbitrary blob under one of the collection keys
// ("properties", "inquiries" or "user").
func (m *Memory) PutRaw(key string, value []byte) {
	_ = m.kvImpl.set(context.Background(), key, value)
}

// Raw returns the stored blob for a collection key, or nil.
func (m *Memory) Raw(key string) []byte {
	data, err := m.kvImpl.get(context.Background(), key)
	if err != nil {
		return nil
	}
	return data
}
