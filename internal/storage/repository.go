package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is a durable key-value area. Values are opaque strings and
// every write replaces the previous value for the key.
type Repository interface {
	GetSlot(ctx context.Context, key string) (string, error)
	PutSlot(ctx context.Context, key, value string) error
	DeleteSlot(ctx context.Context, key string) error
	Close() error
}
