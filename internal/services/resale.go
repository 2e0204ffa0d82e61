package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/internal/metrics"
	"github.com/vishal1412/PropScan-sub000/internal/store"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

// ResaleService manages user-submitted resale listings through two
// independent state machines: approvalStatus (pending -> approved|rejected,
// both terminal) and listingStatus (active/sold/on-hold, freely
// transitionable once approved). Public visibility is always the conjunction
// approved AND active.
type ResaleService struct {
	listings *store.Collection[*domain.ResaleProperty]
}

// NewResaleService creates a new resale service
func NewResaleService(s store.Store) *ResaleService {
	return &ResaleService{
		listings: store.NewCollection[*domain.ResaleProperty](s, "resale-properties"),
	}
}

// Submit is the public entry point. It forces approvalStatus to pending and
// listingStatus to active regardless of what the caller sent.
func (s *ResaleService) Submit(ctx context.Context, p *domain.ResaleProperty) (*domain.ResaleProperty, error) {
	log.Printf("[RESALE] Submit request: seller=%s city=%s locality=%s",
		strings.TrimSpace(p.SellerName), p.City, p.Locality)

	if fields := validateResaleSubmission(p); len(fields) > 0 {
		log.Printf("[RESALE] Submit failed: validation error: %v", fields)
		return nil, errors.NewValidation(fields)
	}

	p.SellerName = strings.TrimSpace(p.SellerName)
	p.SellerPhone = phoneDigits(p.SellerPhone)
	p.SellerEmail = strings.ToLower(strings.TrimSpace(p.SellerEmail))
	p.City = strings.TrimSpace(p.City)
	p.Locality = strings.TrimSpace(p.Locality)
	p.ApprovalStatus = domain.ApprovalPending
	p.ListingStatus = domain.ListingActive
	p.RejectionReason = ""
	p.AdminNotes = ""

	created, err := s.listings.Append(ctx, p)
	metrics.RecordStoreOperation("resale-properties", "append", err == nil)
	if err != nil {
		log.Printf("[RESALE] Submit failed: store error: %v", err)
		return nil, err
	}

	log.Printf("[RESALE] Submit successful: id=%s seller=%s", created.ID, created.SellerName)
	metrics.RecordResaleSubmission()
	return created, nil
}

// Approve transitions a pending listing to approved. Rejection is terminal:
// approving a rejected listing is an invalid transition.
func (s *ResaleService) Approve(ctx context.Context, id, adminNotes string) (*domain.ResaleProperty, error) {
	p, err := s.listings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.ApprovalStatus == domain.ApprovalRejected {
		return nil, errors.New(errors.ErrCodeInvalidState,
			fmt.Sprintf("resale property %s is rejected and cannot be approved", id))
	}

	p.ApprovalStatus = domain.ApprovalApproved
	if p.ListingStatus == "" {
		p.ListingStatus = domain.ListingActive
	}
	if adminNotes != "" {
		p.AdminNotes = adminNotes
	}

	updated, err := s.listings.Put(ctx, p)
	if err != nil {
		log.Printf("[RESALE] Approve failed: id=%s: %v", id, err)
		return nil, err
	}
	log.Printf("[RESALE] Approved: id=%s listing_status=%s", id, updated.ListingStatus)
	metrics.RecordResaleDecision("approved")
	return updated, nil
}

// Reject transitions a pending listing to rejected with a mandatory reason,
// stored for the submitter's benefit. Approval is terminal: rejecting an
// approved listing is an invalid transition.
func (s *ResaleService) Reject(ctx context.Context, id, reason, adminNotes string) (*domain.ResaleProperty, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errors.NewFieldValidation("reason", "a rejection reason is required")
	}

	p, err := s.listings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.ApprovalStatus == domain.ApprovalApproved {
		return nil, errors.New(errors.ErrCodeInvalidState,
			fmt.Sprintf("resale property %s is approved and cannot be rejected", id))
	}

	p.ApprovalStatus = domain.ApprovalRejected
	p.RejectionReason = strings.TrimSpace(reason)
	if adminNotes != "" {
		p.AdminNotes = adminNotes
	}

	updated, err := s.listings.Put(ctx, p)
	if err != nil {
		log.Printf("[RESALE] Reject failed: id=%s: %v", id, err)
		return nil, err
	}
	log.Printf("[RESALE] Rejected: id=%s reason=%q", id, updated.RejectionReason)
	metrics.RecordResaleDecision("rejected")
	return updated, nil
}

// SetListingStatus moves an approved listing between active, sold and
// on-hold. Only approved listings have a meaningful listing status.
func (s *ResaleService) SetListingStatus(ctx context.Context, id string, status domain.ListingStatus) (*domain.ResaleProperty, error) {
	if !domain.ValidListingStatus(string(status)) {
		return nil, errors.NewFieldValidation("status", "status must be active, sold or on-hold")
	}

	p, err := s.listings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.ApprovalStatus != domain.ApprovalApproved {
		return nil, errors.New(errors.ErrCodeInvalidState,
			fmt.Sprintf("resale property %s is %s; listing status applies only to approved listings", id, p.ApprovalStatus))
	}

	p.ListingStatus = status
	updated, err := s.listings.Put(ctx, p)
	if err != nil {
		log.Printf("[RESALE] SetListingStatus failed: id=%s: %v", id, err)
		return nil, err
	}
	log.Printf("[RESALE] Listing status changed: id=%s status=%s", id, status)
	return updated, nil
}

// ListByApprovalStatus returns listings in one approval state.
func (s *ResaleService) ListByApprovalStatus(ctx context.Context, status domain.ApprovalStatus) ([]*domain.ResaleProperty, error) {
	if !domain.ValidApprovalStatus(string(status)) {
		return nil, errors.NewFieldValidation("status", "status must be pending, approved or rejected")
	}
	return s.listings.Filter(ctx, func(p *domain.ResaleProperty) bool {
		return p.ApprovalStatus == status
	})
}

// ListAll returns every resale listing for cross-state admin views.
func (s *ResaleService) ListAll(ctx context.Context) ([]*domain.ResaleProperty, error) {
	return s.listings.All(ctx)
}

// ListPubliclyVisible returns listings that are approved AND active.
func (s *ResaleService) ListPubliclyVisible(ctx context.Context) ([]*domain.ResaleProperty, error) {
	return s.listings.Filter(ctx, func(p *domain.ResaleProperty) bool {
		return p.PubliclyVisible()
	})
}

// Update is an unrestricted admin edit regardless of state, except that the
// two status fields only move through the workflow operations above.
func (s *ResaleService) Update(ctx context.Context, id string, patch map[string]any) (*domain.ResaleProperty, error) {
	if _, ok := patch["approval_status"]; ok {
		return nil, errors.NewFieldValidation("approval_status", "approval status changes go through approve/reject")
	}
	if _, ok := patch["listing_status"]; ok {
		return nil, errors.NewFieldValidation("listing_status", "listing status changes go through the status operation")
	}

	updated, err := s.listings.Update(ctx, id, patch)
	metrics.RecordStoreOperation("resale-properties", "update", err == nil || errors.IsNotFound(err))
	if err != nil {
		if !errors.IsNotFound(err) {
			log.Printf("[RESALE] Update failed: id=%s: %v", id, err)
		}
		return nil, err
	}
	return updated, nil
}

// Delete permanently removes a listing regardless of state.
func (s *ResaleService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.listings.Delete(ctx, id)
	metrics.RecordStoreOperation("resale-properties", "delete", err == nil)
	if err != nil {
		log.Printf("[RESALE] Delete failed: id=%s: %v", id, err)
		return false, err
	}
	log.Printf("[RESALE] Delete: id=%s removed=%v", id, deleted)
	return deleted, nil
}

// validateResaleSubmission checks the required submission fields, returning
// one message per offending field so forms can highlight them individually.
func validateResaleSubmission(p *domain.ResaleProperty) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(p.SellerName) == "" {
		fields["seller_name"] = "seller name is required"
	}
	if strings.TrimSpace(p.SellerPhone) == "" {
		fields["seller_phone"] = "seller phone is required"
	} else if !validPhone(p.SellerPhone) {
		fields["seller_phone"] = "phone must be 10 digits"
	}
	if strings.TrimSpace(p.SellerEmail) == "" {
		fields["seller_email"] = "seller email is required"
	} else if !validEmail(p.SellerEmail) {
		fields["seller_email"] = "invalid email address"
	}
	if p.SellerType != "" && p.SellerType != domain.SellerOwner && p.SellerType != domain.SellerInvestor {
		fields["seller_type"] = "seller type must be owner or investor"
	}
	if strings.TrimSpace(p.City) == "" {
		fields["city"] = "city is required"
	}
	if strings.TrimSpace(p.Locality) == "" {
		fields["locality"] = "locality is required"
	}
	if strings.TrimSpace(p.Area) == "" {
		fields["area"] = "area is required"
	}
	if strings.TrimSpace(p.Price) == "" {
		fields["price"] = "price is required"
	}
	if strings.TrimSpace(p.Description) == "" {
		fields["description"] = "description is required"
	}
	return fields
}
