// Package domain holds the typed records persisted by the record store.
package domain

import (
	"time"
)

// PropertyStatus is the lifecycle status of a catalog property.
type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "active"
	PropertyInactive PropertyStatus = "inactive"
)

// ValidPropertyStatus returns true if s is a known property status.
func ValidPropertyStatus(s string) bool {
	switch PropertyStatus(s) {
	case PropertyActive, PropertyInactive:
		return true
	}
	return false
}

// MarketingPhase is the sales phase a catalog property is marketed under.
type MarketingPhase string

const (
	PhaseNewLaunch         MarketingPhase = "new-launch"
	PhaseUnderConstruction MarketingPhase = "under-construction"
	PhaseReadyToMove       MarketingPhase = "ready-to-move"
)

// ValidMarketingPhase returns true if s is a known marketing phase.
func ValidMarketingPhase(s string) bool {
	switch MarketingPhase(s) {
	case PhaseNewLaunch, PhaseUnderConstruction, PhaseReadyToMove:
		return true
	}
	return false
}

// VerificationStatus marks whether a listing's documents have been verified.
type VerificationStatus string

const (
	Verified             VerificationStatus = "verified"
	VerificationProgress VerificationStatus = "in-progress"
)

// Property represents a developer project in the city-partitioned catalog.
// A property belongs to exactly one city; moving it is delete-then-add.
type Property struct {
	ID            string             `json:"id"`
	City          string             `json:"city"`
	Name          string             `json:"name"`
	Location      string             `json:"location"`
	PriceRange    string             `json:"price_range"`
	PricePerSqft  string             `json:"price_per_sqft"`
	SizeRange     string             `json:"size_range"`
	Configuration string             `json:"configuration"`
	Possession    string             `json:"possession"`
	PaymentPlan   string             `json:"payment_plan"`
	Description   string             `json:"description"`
	Highlights    string             `json:"highlights"`
	Amenities     []string           `json:"amenities"`
	Builder       string             `json:"builder"`
	ReraNumber    string             `json:"rera_number"`
	Images        []string           `json:"images"`
	Status        PropertyStatus     `json:"status"`
	Phase         MarketingPhase     `json:"phase"`
	Verification  VerificationStatus `json:"verification"`
	LandArea      *string            `json:"land_area,omitempty"`
	Towers        *int               `json:"towers,omitempty"`
	Floors        *int               `json:"floors,omitempty"`
	Brochure      *string            `json:"brochure,omitempty"`
	Highlighted   bool               `json:"highlighted"`
	CreatedAt     time.Time          `json:"created_at"`
}

// RecordID implements store.Record.
func (p *Property) RecordID() string { return p.ID }

// StampNew implements store.Record.
func (p *Property) StampNew(id string, createdAt time.Time) {
	p.ID = id
	p.CreatedAt = createdAt
}
