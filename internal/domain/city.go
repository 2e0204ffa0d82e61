package domain

import (
	"time"
)

// City is reference data: the slug partitions the property catalog.
type City struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordID implements store.Record.
func (c *City) RecordID() string { return c.ID }

// StampNew implements store.Record.
func (c *City) StampNew(id string, createdAt time.Time) {
	c.ID = id
	c.CreatedAt = createdAt
}
