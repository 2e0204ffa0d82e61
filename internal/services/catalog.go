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

// CatalogService manages the city-partitioned property catalog. Properties
// live in a single collection; the city slug on each record is the
// partition key.
type CatalogService struct {
	properties *store.Collection[*domain.Property]
}

// NewCatalogService creates a new catalog service
func NewCatalogService(s store.Store) *CatalogService {
	return &CatalogService{
		properties: store.NewCollection[*domain.Property](s, "properties"),
	}
}

// ListAll returns every property across all city partitions.
func (s *CatalogService) ListAll(ctx context.Context) ([]*domain.Property, error) {
	return s.properties.All(ctx)
}

// ListByCity returns the properties in one city partition. The slug match is
// case-insensitive; an unknown slug yields an empty list, not an error.
func (s *CatalogService) ListByCity(ctx context.Context, citySlug string) ([]*domain.Property, error) {
	slug := strings.ToLower(strings.TrimSpace(citySlug))
	return s.properties.Filter(ctx, func(p *domain.Property) bool {
		return strings.ToLower(p.City) == slug
	})
}

// Get returns one property by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.properties.Get(ctx, id)
}

// Add creates a property in the given city partition.
func (s *CatalogService) Add(ctx context.Context, citySlug string, p *domain.Property) (*domain.Property, error) {
	fields := map[string]string{}
	slug := strings.ToLower(strings.TrimSpace(citySlug))
	if slug == "" {
		fields["city"] = "city is required"
	}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = "name is required"
	}
	if p.Status != "" && !domain.ValidPropertyStatus(string(p.Status)) {
		fields["status"] = "status must be active or inactive"
	}
	if p.Phase != "" && !domain.ValidMarketingPhase(string(p.Phase)) {
		fields["phase"] = "phase must be new-launch, under-construction or ready-to-move"
	}
	if len(fields) > 0 {
		return nil, errors.NewValidation(fields)
	}

	p.City = slug
	if p.Status == "" {
		p.Status = domain.PropertyActive
	}
	if p.Verification == "" {
		p.Verification = domain.VerificationProgress
	}

	created, err := s.properties.Append(ctx, p)
	metrics.RecordStoreOperation("properties", "append", err == nil)
	if err != nil {
		log.Printf("[CATALOG] Add failed: city=%s name=%s: %v", slug, p.Name, err)
		return nil, err
	}
	log.Printf("[CATALOG] Property added: id=%s city=%s name=%s", created.ID, created.City, created.Name)
	return created, nil
}

// Update shallow-merges partial fields into a property. The city partition
// cannot be changed here: moving a property between cities is delete+add.
func (s *CatalogService) Update(ctx context.Context, id string, patch map[string]any) (*domain.Property, error) {
	if _, ok := patch["city"]; ok {
		return nil, errors.NewFieldValidation("city", "a property cannot change city; delete and re-add it instead")
	}
	if v, ok := patch["status"]; ok {
		if str, isStr := v.(string); !isStr || !domain.ValidPropertyStatus(str) {
			return nil, errors.NewFieldValidation("status", "status must be active or inactive")
		}
	}
	if v, ok := patch["phase"]; ok {
		if str, isStr := v.(string); !isStr || !domain.ValidMarketingPhase(str) {
			return nil, errors.NewFieldValidation("phase", "phase must be new-launch, under-construction or ready-to-move")
		}
	}

	updated, err := s.properties.Update(ctx, id, patch)
	metrics.RecordStoreOperation("properties", "update", err == nil || errors.IsNotFound(err))
	if err != nil {
		if !errors.IsNotFound(err) {
			log.Printf("[CATALOG] Update failed: id=%s: %v", id, err)
		}
		return nil, err
	}
	log.Printf("[CATALOG] Property updated: id=%s city=%s", updated.ID, updated.City)
	return updated, nil
}

// Delete removes a property, reporting whether anything was removed.
func (s *CatalogService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.properties.Delete(ctx, id)
	metrics.RecordStoreOperation("properties", "delete", err == nil)
	if err != nil {
		log.Printf("[CATALOG] Delete failed: id=%s: %v", id, err)
		return false, err
	}
	log.Printf("[CATALOG] Property delete: id=%s removed=%v", id, deleted)
	return deleted, nil
}
