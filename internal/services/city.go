package services

import (
	"context"
	"log"
	"strings"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/internal/metrics"
	"github.com/vishal1412/PropScan-sub000/internal/store"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

// CityService manages the city lookup table. Most consumers read it as
// reference data; add/update/delete exist for the admin panel.
type CityService struct {
	cities *store.Collection[*domain.City]
}

// NewCityService creates a new city service
func NewCityService(s store.Store) *CityService {
	return &CityService{
		cities: store.NewCollection[*domain.City](s, "cities"),
	}
}

// ListAll returns every city.
func (s *CityService) ListAll(ctx context.Context) ([]*domain.City, error) {
	return s.cities.All(ctx)
}

// Add creates a city with a URL-safe slug.
func (s *CityService) Add(ctx context.Context, c *domain.City) (*domain.City, error) {
	fields := map[string]string{}
	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(c.Slug) == "" {
		fields["slug"] = "slug is required"
	}
	if len(fields) > 0 {
		return nil, errors.NewValidation(fields)
	}

	c.Slug = strings.ToLower(strings.TrimSpace(c.Slug))

	created, err := s.cities.Append(ctx, c)
	metrics.RecordStoreOperation("cities", "append", err == nil)
	if err != nil {
		log.Printf("[CITY] Add failed: slug=%s: %v", c.Slug, err)
		return nil, err
	}
	log.Printf("[CITY] Added: id=%s slug=%s", created.ID, created.Slug)
	return created, nil
}

// Update shallow-merges partial fields into a city.
func (s *CityService) Update(ctx context.Context, id string, patch map[string]any) (*domain.City, error) {
	updated, err := s.cities.Update(ctx, id, patch)
	metrics.RecordStoreOperation("cities", "update", err == nil || errors.IsNotFound(err))
	if err != nil {
		if !errors.IsNotFound(err) {
			log.Printf("[CITY] Update failed: id=%s: %v", id, err)
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a city, reporting whether anything was removed.
func (s *CityService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.cities.Delete(ctx, id)
	metrics.RecordStoreOperation("cities", "delete", err == nil)
	if err != nil {
		log.Printf("[CITY] Delete failed: id=%s: %v", id, err)
		return false, err
	}
	return deleted, nil
}
