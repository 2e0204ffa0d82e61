package domain

import (
	"time"
)

// ApprovalStatus tracks whether an admin has reviewed a resale submission.
// pending is the initial state; approved and rejected are terminal.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ValidApprovalStatus returns true if s is a known approval status.
func ValidApprovalStatus(s string) bool {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// ListingStatus is the commercial availability of an approved listing.
// Admins may move freely between the three states.
type ListingStatus string

const (
	ListingActive ListingStatus = "active"
	ListingSold   ListingStatus = "sold"
	ListingOnHold ListingStatus = "on-hold"
)

// ValidListingStatus returns true if s is a known listing status.
func ValidListingStatus(s string) bool {
	switch ListingStatus(s) {
	case ListingActive, ListingSold, ListingOnHold:
		return true
	}
	return false
}

// SellerType distinguishes who is selling a resale property.
type SellerType string

const (
	SellerOwner    SellerType = "owner"
	SellerInvestor SellerType = "investor"
)

// ResaleProperty is a listing submitted by an end user rather than an admin.
// ApprovalStatus and ListingStatus are independent state machines: public
// visibility is always the conjunction approved AND active.
type ResaleProperty struct {
	ID string `json:"id"`

	SellerName  string     `json:"seller_name"`
	SellerPhone string     `json:"seller_phone"`
	SellerEmail string     `json:"seller_email"`
	SellerType  SellerType `json:"seller_type,omitempty"`

	PropertyType string `json:"property_type,omitempty"`
	BHK          string `json:"bhk,omitempty"`
	Area         string `json:"area"`
	Bathrooms    int    `json:"bathrooms,omitempty"`
	Balconies    int    `json:"balconies,omitempty"`
	Parking      int    `json:"parking,omitempty"`
	Floor        int    `json:"floor,omitempty"`
	TotalFloors  int    `json:"total_floors,omitempty"`
	Age          string `json:"age,omitempty"`
	Facing       string `json:"facing,omitempty"`
	Furnishing   string `json:"furnishing,omitempty"`

	City     string `json:"city"`
	Locality string `json:"locality"`
	Project  string `json:"project,omitempty"`
	Address  string `json:"address,omitempty"`

	Price      string `json:"price"`
	Negotiable bool   `json:"negotiable"`

	Description string   `json:"description"`
	Highlights  []string `json:"highlights,omitempty"`
	Images      []string `json:"images,omitempty"`

	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	ListingStatus   ListingStatus  `json:"listing_status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	AdminNotes      string         `json:"admin_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// PubliclyVisible reports whether the listing appears on the public site.
func (p *ResaleProperty) PubliclyVisible() bool {
	return p.ApprovalStatus == ApprovalApproved && p.ListingStatus == ListingActive
}

// RecordID implements store.Record.
func (p *ResaleProperty) RecordID() string { return p.ID }

// StampNew implements store.Record.
func (p *ResaleProperty) StampNew(id string, createdAt time.Time) {
	p.ID = id
	p.CreatedAt = createdAt
}
