package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingCollectionReadsEmpty(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	data, err := s.Read(context.Background(), "properties")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	doc := []byte(`[{"id":"a1"}]`)
	require.NoError(t, s.Write(ctx, "leads", doc))

	data, err := s.Read(ctx, "leads")
	require.NoError(t, err)
	assert.Equal(t, doc, data)

	// One file per collection under the data directory.
	_, err = os.Stat(filepath.Join(dir, "leads.json"))
	assert.NoError(t, err)
}

func TestFileStoreOverwriteReplacesDocument(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Write(ctx, "cities", []byte(`[{"id":"old"}]`)))
	require.NoError(t, s.Write(ctx, "cities", []byte(`[]`)))

	data, err := s.Read(ctx, "cities")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreIsWritable(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.False(t, s.ReadOnly())
}
