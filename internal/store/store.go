// Package store implements the record store: whole-collection JSON documents
// persisted by one of three drivers (flat files, a database blob table, or
// read-only static snapshots).
//
// Every write rewrites the full collection. Concurrent writers to the same
// collection are last-write-wins; this is documented behavior at this
// system's scale, not something the drivers try to fix with locking.
package store

import (
	"context"
	"fmt"
	"os"

	"github.com/vishal1412/PropScan-sub000/internal/config"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

// Store persists named collections as opaque JSON documents.
type Store interface {
	// Read returns the raw collection document. A collection that does not
	// exist yet reads as empty (nil, nil), never as an error.
	Read(ctx context.Context, collection string) ([]byte, error)
	// Write replaces the full collection document, creating it if needed.
	Write(ctx context.Context, collection string, data []byte) error
	// ReadOnly reports whether writes are categorically disallowed.
	ReadOnly() bool
	Close() error
}

// New builds the store selected by the configuration. A read-only deployment
// mode wraps any driver so that writes fail with a READ_ONLY_MODE error
// before touching storage.
func New(cfg *config.Config) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Storage.Driver {
	case config.DriverFile:
		s, err = NewFileStore(cfg.Storage.DataDir)
	case config.DriverDatabase:
		s, err = NewDatabaseStore(&cfg.Storage.Database)
	case config.DriverStatic:
		s = NewStaticStore(os.DirFS(cfg.Storage.SnapshotDir))
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}
	if cfg.App.Mode == config.ModeReadOnly {
		s = readOnlyStore{inner: s}
	}
	return s, nil
}

// readOnlyStore rejects writes regardless of the underlying driver.
type readOnlyStore struct {
	inner Store
}

func (r readOnlyStore) Read(ctx context.Context, collection string) ([]byte, error) {
	return r.inner.Read(ctx, collection)
}

func (r readOnlyStore) Write(ctx context.Context, collection string, data []byte) error {
	return errors.New(errors.ErrCodeReadOnly, "deployment is read-only")
}

func (r readOnlyStore) ReadOnly() bool { return true }

func (r readOnlyStore) Close() error { return r.inner.Close() }
