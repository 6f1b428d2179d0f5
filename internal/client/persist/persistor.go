// Package persist keeps the session user alive across restarts. At startup
// the Persistor rehydrates the store from the storage adapter; afterwards it
// writes the user slice through on every state change.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophonboard/internal/client/models"
	"github.com/dmitrijs2005/gophonboard/internal/client/session"
	"github.com/dmitrijs2005/gophonboard/internal/client/storage"
	"github.com/dmitrijs2005/gophonboard/internal/logging"
)

const (
	// DefaultKey is the persisted root key, stored as "persist:root".
	DefaultKey = "root"
	// Version is bumped whenever the envelope layout changes; entries with
	// another version are discarded on rehydration.
	Version = 1
)

var ErrCorruptEntry = errors.New("corrupt persisted entry")

type envelope struct {
	User    *models.User `json:"user"`
	Persist meta         `json:"_persist"`
}

type meta struct {
	Version int `json:"version"`
}

type Option func(*Persistor)

func WithKey(key string) Option {
	return func(p *Persistor) { p.key = key }
}

func WithLogger(l logging.Logger) Option {
	return func(p *Persistor) { p.logger = l }
}

// Persistor wires a session.Store to a storage.Storage.
type Persistor struct {
	storage storage.Storage
	store   *session.Store
	key     string
	logger  logging.Logger

	mu   sync.Mutex
	last string
}

func New(st storage.Storage, store *session.Store, opts ...Option) *Persistor {
	p := &Persistor{
		storage: st,
		store:   store,
		key:     DefaultKey,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "persist", "key", p.storageKey())
	return p
}

func (p *Persistor) storageKey() string {
	return "persist:" + p.key
}

// StorageKey is the key the session is persisted under.
func (p *Persistor) StorageKey() string {
	return p.storageKey()
}

// Rehydrate loads the persisted user into the store. A missing entry leaves
// the store untouched. A corrupt or outdated entry is removed and reported
// with ErrCorruptEntry; the caller may log it and carry on.
func (p *Persistor) Rehydrate(ctx context.Context) error {
	raw, ok := p.storage.GetItem(ctx, p.storageKey())
	if !ok {
		p.logger.Debug(ctx, "nothing to rehydrate")
		return nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		p.storage.RemoveItem(ctx, p.storageKey())
		return fmt.Errorf("%w: %w", ErrCorruptEntry, err)
	}
	if env.Persist.Version != Version {
		p.storage.RemoveItem(ctx, p.storageKey())
		return fmt.Errorf("%w: version %d, want %d", ErrCorruptEntry, env.Persist.Version, Version)
	}

	p.mu.Lock()
	p.last = raw
	p.mu.Unlock()

	if env.User != nil {
		p.store.Hydrate(env.User)
	}
	p.logger.Info(ctx, "session rehydrated", "user_present", env.User != nil)
	return nil
}

// Start subscribes to the store and writes the user slice through on every
// change. Write failures are logged and ignored. The returned func stops
// the write-through.
func (p *Persistor) Start(ctx context.Context) (stop func()) {
	return p.store.Subscribe(func(st session.State) {
		p.write(ctx, st)
	})
}

// Flush writes the current state immediately.
func (p *Persistor) Flush(ctx context.Context) bool {
	return p.write(ctx, p.store.State())
}

// Purge removes the persisted entry. The in-memory session is untouched.
func (p *Persistor) Purge(ctx context.Context) {
	p.mu.Lock()
	p.last = ""
	p.mu.Unlock()
	p.storage.RemoveItem(ctx, p.storageKey())
}

func (p *Persistor) write(ctx context.Context, st session.State) bool {
	b, err := json.Marshal(envelope{User: session.SelectUser(&st), Persist: meta{Version: Version}})
	if err != nil {
		p.logger.Error(ctx, "failed to encode session", "error", err)
		return false
	}
	payload := string(b)

	p.mu.Lock()
	defer p.mu.Unlock()

	if payload == p.last {
		return true
	}
	if !p.storage.SetItem(ctx, p.storageKey(), payload) {
		p.logger.Warn(ctx, "write-through failed, session continues in memory")
		return false
	}
	p.last = payload
	return true
}
