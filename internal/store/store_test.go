package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal1412/PropScan-sub000/internal/config"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

func TestNewSelectsFileDriver(t *testing.T) {
	cfg := &config.Config{
		App:     config.AppConfig{Mode: config.ModeReadWrite},
		Storage: config.StorageConfig{Driver: config.DriverFile, DataDir: t.TempDir()},
	}

	s, err := New(cfg)
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &FileStore{}, s)
	assert.False(t, s.ReadOnly())
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{
		App:     config.AppConfig{Mode: config.ModeReadWrite},
		Storage: config.StorageConfig{Driver: "carrier-pigeon"},
	}

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewReadOnlyModeWrapsAnyDriver(t *testing.T) {
	cfg := &config.Config{
		App:     config.AppConfig{Mode: config.ModeReadOnly},
		Storage: config.StorageConfig{Driver: config.DriverFile, DataDir: t.TempDir()},
	}

	s, err := New(cfg)
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.ReadOnly())
	err = s.Write(context.Background(), "leads", []byte(`[]`))
	assert.True(t, errors.IsReadOnly(err))

	// Reads pass through to the wrapped driver.
	data, err := s.Read(context.Background(), "leads")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestDatabaseStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewDatabaseStore(&config.DatabaseConfig{URL: "sqlite:///" + dbPath})
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	data, err := s.Read(ctx, "properties")
	require.NoError(t, err)
	assert.Nil(t, data)

	doc := []byte(`[{"id":"p1"}]`)
	require.NoError(t, s.Write(ctx, "properties", doc))

	data, err = s.Read(ctx, "properties")
	require.NoError(t, err)
	assert.Equal(t, doc, data)

	// A second write upserts the same row.
	require.NoError(t, s.Write(ctx, "properties", []byte(`[]`)))
	data, err = s.Read(ctx, "properties")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}
