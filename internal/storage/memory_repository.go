package storage

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu    sync.Mutex
	slots map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{slots: make(map[string]string)}
}

func (r *MemoryRepository) GetSlot(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (r *MemoryRepository) PutSlot(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = value
	return nil
}

func (r *MemoryRepository) DeleteSlot(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[key]; !ok {
		return ErrNotFound
	}
	delete(r.slots, key)
	return nil
}

func (r *MemoryRepository) Close() error {
	return nil
}
