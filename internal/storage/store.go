// Package storage persists drafts and records behind a key/value Store so the
// parsing and serialization code stays free of any storage dependency.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Get for a missing key
var ErrNotFound = errors.New("key not found")

// Store is a byte-valued key/value store. Delete of a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open builds the Store for driver. sqlite and postgres need a DSN and have
// their schema created on open.
func Open(ctx context.Context, driver, dsn string, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch driver {
	case DriverMemory, "":
		return NewMemoryStore(), nil
	case DriverSQLite:
		if dsn == "" {
			return nil, fmt.Errorf("sqlite storage requires a DSN")
		}
		return OpenSQLite(ctx, dsn, logger)
	case DriverPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("postgres storage requires a DSN")
		}
		return ConnectPostgres(ctx, dsn, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
