package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

// FileStore keeps one <collection>.json file per collection under a data
// directory. The mutex only prevents torn files within this process;
// cross-process writers remain last-write-wins.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates a file store rooted at dir, creating dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("creating data directory %s", dir), err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read returns the collection file contents, or (nil, nil) if it does not exist.
func (s *FileStore) Read(ctx context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("reading collection %s", collection), err)
	}
	return data, nil
}

// Write replaces the collection file, creating it on first write.
func (s *FileStore) Write(ctx context.Context, collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("writing collection %s", collection), err)
	}
	return nil
}

func (s *FileStore) ReadOnly() bool { return false }

func (s *FileStore) Close() error { return nil }
