// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/sop-core/internal/domain/entities"
)

// Generator is a mock implementation of ports.Generator.
type Generator struct {
	// Text and Err are the configured return values.
	Text string
	Err  error

	// Requests records every request received, in call order.
	Requests []entities.GenerationRequest
}

// Generate returns the configured text or error.
func (m *Generator) Generate(ctx context.Context, req entities.GenerationRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}
