// Package metadata is a small key/value repository over the client's local
// SQLite database. Values are opaque bytes; callers own their encoding.
package metadata

import (
	"context"
	"database/sql"
)

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete reports whether a row was removed. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) (bool, error)
	List(ctx context.Context) (map[string][]byte, error)
}

// Querier is satisfied by both *sql.DB and *sql.Tx, so the same repository
// can run inside or outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
