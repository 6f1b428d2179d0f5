package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophonboard/internal/logging"
)

// Storage is the contract the persistence layer talks to. Callers treat
// every call as potentially blocking; failures are never returned, only
// reported through the boolean/absent results.
type Storage interface {
	SetItem(ctx context.Context, key, value string) bool
	GetItem(ctx context.Context, key string) (string, bool)
	RemoveItem(ctx context.Context, key string)
}

// Adapter bridges an Engine to the Storage contract. Engine errors are
// wrapped in ErrPersistence, logged as warnings and swallowed so the session
// keeps working in memory.
type Adapter struct {
	engine Engine
	logger logging.Logger
}

func NewAdapter(engine Engine, logger logging.Logger) *Adapter {
	return &Adapter{engine: engine, logger: logger.With("component", "storage")}
}

// SetItem writes value under key, overwriting any previous value. It returns
// false when the engine failed or ctx was already done.
func (a *Adapter) SetItem(ctx context.Context, key, value string) bool {
	if err := ctx.Err(); err != nil {
		a.warn(ctx, "set", key, err)
		return false
	}
	if err := a.engine.Set(ctx, key, value); err != nil {
		a.warn(ctx, "set", key, err)
		return false
	}
	a.logger.Debug(ctx, "item stored", "key", key, "bytes", len(value))
	return true
}

// GetItem returns the stored value for key. The second result is false when
// the key is absent or the engine could not be read.
func (a *Adapter) GetItem(ctx context.Context, key string) (string, bool) {
	if err := ctx.Err(); err != nil {
		a.warn(ctx, "get", key, err)
		return "", false
	}
	v, ok, err := a.engine.GetString(ctx, key)
	if err != nil {
		a.warn(ctx, "get", key, err)
		return "", false
	}
	return v, ok
}

// RemoveItem deletes key. Removing an absent key is a no-op.
func (a *Adapter) RemoveItem(ctx context.Context, key string) {
	if err := ctx.Err(); err != nil {
		a.warn(ctx, "remove", key, err)
		return
	}
	if err := a.engine.Delete(ctx, key); err != nil {
		a.warn(ctx, "remove", key, err)
	}
}

// MultiRemove deletes all keys, atomically when the engine supports it.
// It reports whether every key was removed.
func (a *Adapter) MultiRemove(ctx context.Context, keys ...string) bool {
	if len(keys) == 0 {
		return true
	}
	if err := ctx.Err(); err != nil {
		a.warn(ctx, "remove", fmt.Sprint(keys), err)
		return false
	}

	if be, ok := a.engine.(BatchEngine); ok {
		if err := be.DeleteMany(ctx, keys); err != nil {
			a.warn(ctx, "remove", fmt.Sprint(keys), err)
			return false
		}
		return true
	}

	done := true
	for _, k := range keys {
		if err := a.engine.Delete(ctx, k); err != nil {
			a.warn(ctx, "remove", k, err)
			done = false
		}
	}
	return done
}

// Close releases the engine.
func (a *Adapter) Close() error {
	return a.engine.Close()
}

func (a *Adapter) warn(ctx context.Context, op, key string, err error) {
	a.logger.Warn(ctx, "storage call failed, continuing in memory",
		"op", op, "key", key, "error", fmt.Errorf("%w: %w", ErrPersistence, err))
}
