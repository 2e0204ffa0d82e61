package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	return NewCatalogService(newTestStore(t))
}

func TestCatalogAddDefaults(t *testing.T) {
	svc := newTestCatalog(t)

	created, err := svc.Add(context.Background(), "Pune", &domain.Property{Name: "Skyline Heights"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	// The partition key is normalized to a lowercase slug.
	assert.Equal(t, "pune", created.City)
	assert.Equal(t, domain.PropertyActive, created.Status)
	assert.Equal(t, domain.VerificationProgress, created.Verification)
}

func TestCatalogAddValidation(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "", &domain.Property{Name: "Skyline Heights"})
	require.Error(t, err)
	assert.Contains(t, errors.FieldsOf(err), "city")

	_, err = svc.Add(ctx, "pune", &domain.Property{})
	require.Error(t, err)
	assert.Contains(t, errors.FieldsOf(err), "name")

	_, err = svc.Add(ctx, "pune", &domain.Property{Name: "Skyline Heights", Status: "archived"})
	require.Error(t, err)
	assert.Contains(t, errors.FieldsOf(err), "status")

	_, err = svc.Add(ctx, "pune", &domain.Property{Name: "Skyline Heights", Phase: "someday"})
	require.Error(t, err)
	assert.Contains(t, errors.FieldsOf(err), "phase")
}

func TestCatalogCityPartitionsAreIsolated(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "pune", &domain.Property{Name: "Skyline Heights"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "mumbai", &domain.Property{Name: "Marine Towers"})
	require.NoError(t, err)

	pune, err := svc.ListByCity(ctx, "pune")
	require.NoError(t, err)
	require.Len(t, pune, 1)
	assert.Equal(t, "Skyline Heights", pune[0].Name)

	mumbai, err := svc.ListByCity(ctx, "mumbai")
	require.NoError(t, err)
	require.Len(t, mumbai, 1)
	assert.Equal(t, "Marine Towers", mumbai[0].Name)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCatalogListByCityCaseInsensitive(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "pune", &domain.Property{Name: "Skyline Heights"})
	require.NoError(t, err)

	got, err := svc.ListByCity(ctx, "  PUNE ")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalogUnknownCityYieldsEmptyList(t *testing.T) {
	svc := newTestCatalog(t)

	got, err := svc.ListByCity(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogUpdate(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "pune", &domain.Property{Name: "Skyline Heights"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, map[string]any{"builder": "Acme Developers", "status": "inactive"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Developers", updated.Builder)
	assert.Equal(t, domain.PropertyInactive, updated.Status)
	assert.Equal(t, "pune", updated.City)
}

func TestCatalogUpdateCannotChangeCity(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "pune", &domain.Property{Name: "Skyline Heights"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, map[string]any{"city": "mumbai"})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, errors.FieldsOf(err), "city")

	// The partition is untouched.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pune", got.City)
}

func TestCatalogUpdateValidatesEnums(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "pune", &domain.Property{Name: "Skyline Heights"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, map[string]any{"status": "archived"})
	assert.True(t, errors.IsValidation(err))

	_, err = svc.Update(ctx, created.ID, map[string]any{"phase": 7})
	assert.True(t, errors.IsValidation(err))
}

func TestCatalogDelete(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "pune", &domain.Property{Name: "Skyline Heights"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, errors.IsNotFound(err))
}
