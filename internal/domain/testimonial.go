package domain

import (
	"time"
)

// Testimonial is a customer quote shown on the marketing site.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordID implements store.Record.
func (t *Testimonial) RecordID() string { return t.ID }

// StampNew implements store.Record.
func (t *Testimonial) StampNew(id string, createdAt time.Time) {
	t.ID = id
	t.CreatedAt = createdAt
}
