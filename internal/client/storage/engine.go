package storage

import (
	"context"
	"errors"
)

// ErrPersistence wraps every failure of the backing engine. The Adapter logs
// it and reports non-success; it never reaches the session store.
var ErrPersistence = errors.New("persistence failure")

// Engine is the raw on-device key/value engine. Calls complete before they
// return and report failures as errors.
//
// GetString returns ("", false, nil) for a key that was never set or has
// been deleted. Delete of a missing key is not an error.
type Engine interface {
	Set(ctx context.Context, key, value string) error
	GetString(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// BatchEngine is implemented by engines that can remove several keys
// atomically.
type BatchEngine interface {
	DeleteMany(ctx context.Context, keys []string) error
}
