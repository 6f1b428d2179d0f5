package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophonboard/internal/dbx"
)

// SQLiteEngine stores entries in the kv table created by the embedded
// migrations.
type SQLiteEngine struct {
	db dbx.DBTX
	// closer is nil when the engine does not own the handle.
	closer *sql.DB
}

// NewSQLiteEngine wraps an existing handle. The caller keeps ownership.
func NewSQLiteEngine(db dbx.DBTX) *SQLiteEngine {
	return &SQLiteEngine{db: db}
}

func (e *SQLiteEngine) Set(ctx context.Context, key, value string) error {
	_, err := e.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (e *SQLiteEngine) GetString(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := e.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, true, nil
}

func (e *SQLiteEngine) Delete(ctx context.Context, key string) error {
	_, err := e.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// DeleteMany removes keys in one transaction. It needs an owned *sql.DB;
// engines built over a transaction fall back to sequential deletes.
func (e *SQLiteEngine) DeleteMany(ctx context.Context, keys []string) error {
	db, ok := e.db.(*sql.DB)
	if !ok {
		for _, k := range keys {
			if err := e.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	}

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete kv keys %v: %w", keys, err)
	}
	return nil
}

func (e *SQLiteEngine) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}
