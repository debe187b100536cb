package server

import (
	"loshu.dev/pkg/loshu/internal/domain"
)

// GenerateRequest is the HTTP request body for POST /api/magic-squares/generate.
type GenerateRequest struct {
	Dimension int `json:"dimension"`
}

// Validate rejects dimensions the synthesizer cannot build before any work is done.
func (r *GenerateRequest) Validate() error {
	if r.Dimension < domain.MinOrder || r.Dimension > domain.MaxOrder {
		return &domain.InvalidOrderError{Order: r.Dimension, Min: domain.MinOrder, Max: domain.MaxOrder}
	}

	return nil
}
