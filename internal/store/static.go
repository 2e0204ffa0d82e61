package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

// StaticStore serves pre-published JSON snapshots of each collection. It is
// the storage side of the read-only deployment mode: every write fails with
// a distinct READ_ONLY_MODE error rather than a silent no-op.
type StaticStore struct {
	fsys fs.FS
}

// NewStaticStore creates a read-only store over fsys. Snapshots are expected
// at <collection>.json.
func NewStaticStore(fsys fs.FS) *StaticStore {
	return &StaticStore{fsys: fsys}
}

// Read returns the snapshot for collection, or (nil, nil) if none was published.
func (s *StaticStore) Read(ctx context.Context, collection string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, collection+".json")
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("reading snapshot %s", collection), err)
	}
	return data, nil
}

// Write always fails: static snapshots are read-only by definition.
func (s *StaticStore) Write(ctx context.Context, collection string, data []byte) error {
	return errors.New(errors.ErrCodeReadOnly, "static snapshot storage is read-only")
}

func (s *StaticStore) ReadOnly() bool { return true }

func (s *StaticStore) Close() error { return nil }
