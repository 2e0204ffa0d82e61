package store

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

func TestStaticStoreServesSnapshots(t *testing.T) {
	fsys := fstest.MapFS{
		"properties.json": {Data: []byte(`[{"id":"p1"}]`)},
	}
	s := NewStaticStore(fsys)

	data, err := s.Read(context.Background(), "properties")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"p1"}]`), data)
}

func TestStaticStoreMissingSnapshotReadsEmpty(t *testing.T) {
	s := NewStaticStore(fstest.MapFS{})

	data, err := s.Read(context.Background(), "leads")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStaticStoreRejectsWrites(t *testing.T) {
	s := NewStaticStore(fstest.MapFS{})

	err := s.Write(context.Background(), "leads", []byte(`[]`))
	require.Error(t, err)
	assert.True(t, errors.IsReadOnly(err))
	assert.True(t, s.ReadOnly())
}
