package services

import (
	"context"
)

// HealthService implements the health check
type HealthService struct {
	name string
}

// NewHealthService creates a new health service
func NewHealthService(name string) *HealthService {
	return &HealthService{name: name}
}

// HealthResult reports service liveness.
type HealthResult struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) *HealthResult {
	return &HealthResult{
		Status:  "healthy",
		Service: s.name,
	}
}
