package domain

import (
	"time"
)

// Lead represents a prospect inquiry submitted from a public-facing form.
// Leads are append-only: there is no update operation, only delete, so the
// record always reflects exactly what the prospect submitted.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	City      string    `json:"city,omitempty"`
	Budget    string    `json:"budget,omitempty"`
	Purpose   string    `json:"purpose,omitempty"`
	Message   string    `json:"message,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordID implements store.Record.
func (l *Lead) RecordID() string { return l.ID }

// StampNew implements store.Record.
func (l *Lead) StampNew(id string, createdAt time.Time) {
	l.ID = id
	l.CreatedAt = createdAt
}
