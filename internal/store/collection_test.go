package store

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

func newTestCollection(t *testing.T) *Collection[*domain.Lead] {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewCollection[*domain.Lead](s, "leads")
}

func TestCollectionAppendStampsRecord(t *testing.T) {
	c := newTestCollection(t)
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	c.newID = func() string { return "lead-1" }
	c.now = func() time.Time { return fixed }

	created, err := c.Append(context.Background(), &domain.Lead{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, "lead-1", created.ID)
	assert.Equal(t, fixed, created.CreatedAt)
}

func TestCollectionAppendThenAll(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	first, err := c.Append(ctx, &domain.Lead{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)
	second, err := c.Append(ctx, &domain.Lead{Name: "Ravi", Phone: "9123456780"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Insertion order is preserved.
	assert.Equal(t, "Asha", all[0].Name)
	assert.Equal(t, "Ravi", all[1].Name)
}

func TestCollectionAllEmptyWhenUnwritten(t *testing.T) {
	c := newTestCollection(t)

	all, err := c.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCollectionGetNotFound(t *testing.T) {
	c := newTestCollection(t)

	_, err := c.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCollectionUpdateMergesShallow(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	created, err := c.Append(ctx, &domain.Lead{Name: "Asha", Phone: "9876543210", City: "pune"})
	require.NoError(t, err)

	updated, err := c.Update(ctx, created.ID, map[string]any{"message": "call after 6pm"})
	require.NoError(t, err)
	assert.Equal(t, "call after 6pm", updated.Message)
	// Unspecified fields survive the merge.
	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, "pune", updated.City)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestCollectionUpdateRejectsUnknownField(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	created, err := c.Append(ctx, &domain.Lead{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	_, err = c.Update(ctx, created.ID, map[string]any{"favorite_color": "blue"})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	// The stored record is untouched by the failed update.
	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
}

func TestCollectionUpdateRejectsIdentityFields(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	created, err := c.Append(ctx, &domain.Lead{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	_, err = c.Update(ctx, created.ID, map[string]any{"id": "other"})
	assert.True(t, errors.IsValidation(err))

	_, err = c.Update(ctx, created.ID, map[string]any{"created_at": "2020-01-01T00:00:00Z"})
	assert.True(t, errors.IsValidation(err))
}

func TestCollectionUpdateNotFound(t *testing.T) {
	c := newTestCollection(t)

	_, err := c.Update(context.Background(), "missing", map[string]any{"name": "x"})
	assert.True(t, errors.IsNotFound(err))
}

func TestCollectionDeleteIsIdempotent(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	created, err := c.Append(ctx, &domain.Lead{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	deleted, err := c.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = c.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCollectionFilter(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	_, err := c.Append(ctx, &domain.Lead{Name: "Asha", Phone: "9876543210", City: "pune"})
	require.NoError(t, err)
	_, err = c.Append(ctx, &domain.Lead{Name: "Ravi", Phone: "9123456780", City: "mumbai"})
	require.NoError(t, err)

	matched, err := c.Filter(ctx, func(l *domain.Lead) bool { return l.City == "pune" })
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Asha", matched[0].Name)
}

func TestCollectionWritesFailOnReadOnlyStore(t *testing.T) {
	c := NewCollection[*domain.Lead](NewStaticStore(fstest.MapFS{
		"leads.json": {Data: []byte(`[{"id":"l1","name":"Asha","phone":"9876543210","created_at":"2026-01-01T00:00:00Z"}]`)},
	}), "leads")
	ctx := context.Background()

	// Reads still work.
	all, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = c.Append(ctx, &domain.Lead{Name: "Ravi", Phone: "9123456780"})
	assert.True(t, errors.IsReadOnly(err))

	_, err = c.Update(ctx, "l1", map[string]any{"name": "Changed"})
	assert.True(t, errors.IsReadOnly(err))

	_, err = c.Delete(ctx, "l1")
	assert.True(t, errors.IsReadOnly(err))
}
