// Package storage is the persisted key/value layer of the session: raw
// engines (SQLite, in-memory) plus the Adapter that turns engine failures
// into non-fatal results.
package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophonboard/internal/logging"
)

const (
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// Open builds the engine selected by kind and wraps it in an Adapter.
// dsn is only used by the SQLite engine.
func Open(ctx context.Context, kind, dsn string, logger logging.Logger) (*Adapter, error) {
	switch kind {
	case KindMemory:
		return NewAdapter(NewMemoryEngine(), logger), nil
	case KindSQLite, "":
		e, err := OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return NewAdapter(e, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q", kind)
	}
}
