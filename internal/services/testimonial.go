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

// TestimonialService manages customer testimonials.
type TestimonialService struct {
	testimonials *store.Collection[*domain.Testimonial]
}

// NewTestimonialService creates a new testimonial service
func NewTestimonialService(s store.Store) *TestimonialService {
	return &TestimonialService{
		testimonials: store.NewCollection[*domain.Testimonial](s, "testimonials"),
	}
}

// ListAll returns every testimonial.
func (s *TestimonialService) ListAll(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.testimonials.All(ctx)
}

// Add creates a testimonial.
func (s *TestimonialService) Add(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	fields := map[string]string{}
	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(t.Message) == "" {
		fields["message"] = "message is required"
	}
	if len(fields) > 0 {
		return nil, errors.NewValidation(fields)
	}

	created, err := s.testimonials.Append(ctx, t)
	metrics.RecordStoreOperation("testimonials", "append", err == nil)
	if err != nil {
		log.Printf("[TESTIMONIAL] Add failed: %v", err)
		return nil, err
	}
	log.Printf("[TESTIMONIAL] Added: id=%s name=%s", created.ID, created.Name)
	return created, nil
}

// Update shallow-merges partial fields into a testimonial.
func (s *TestimonialService) Update(ctx context.Context, id string, patch map[string]any) (*domain.Testimonial, error) {
	updated, err := s.testimonials.Update(ctx, id, patch)
	metrics.RecordStoreOperation("testimonials", "update", err == nil || errors.IsNotFound(err))
	if err != nil {
		if !errors.IsNotFound(err) {
			log.Printf("[TESTIMONIAL] Update failed: id=%s: %v", id, err)
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a testimonial, reporting whether anything was removed.
func (s *TestimonialService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.testimonials.Delete(ctx, id)
	metrics.RecordStoreOperation("testimonials", "delete", err == nil)
	if err != nil {
		log.Printf("[TESTIMONIAL] Delete failed: id=%s: %v", id, err)
		return false, err
	}
	return deleted, nil
}
