package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

func TestTestimonialCRUD(t *testing.T) {
	svc := NewTestimonialService(newTestStore(t))
	ctx := context.Background()

	created, err := svc.Add(ctx, &domain.Testimonial{Name: "Asha", City: "pune", Message: "Smooth purchase"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := svc.Update(ctx, created.ID, map[string]any{"message": "Very smooth purchase"})
	require.NoError(t, err)
	assert.Equal(t, "Very smooth purchase", updated.Message)
	assert.Equal(t, "Asha", updated.Name)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestTestimonialAddValidation(t *testing.T) {
	svc := NewTestimonialService(newTestStore(t))

	_, err := svc.Add(context.Background(), &domain.Testimonial{City: "pune"})
	require.Error(t, err)
	fields := errors.FieldsOf(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "message")
}

func TestCityCRUD(t *testing.T) {
	svc := NewCityService(newTestStore(t))
	ctx := context.Background()

	created, err := svc.Add(ctx, &domain.City{Name: "Pune", Slug: " Pune "})
	require.NoError(t, err)
	assert.Equal(t, "pune", created.Slug)

	updated, err := svc.Update(ctx, created.ID, map[string]any{"name": "Pune City"})
	require.NoError(t, err)
	assert.Equal(t, "Pune City", updated.Name)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCityAddValidation(t *testing.T) {
	svc := NewCityService(newTestStore(t))

	_, err := svc.Add(context.Background(), &domain.City{})
	require.Error(t, err)
	fields := errors.FieldsOf(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "slug")
}
