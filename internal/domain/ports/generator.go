// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/sop-core/internal/domain/entities"
)

// Generator defines the interface for document text generation.
// A single call is one blocking round trip: no retry, no streaming.
type Generator interface {
	// Generate produces the full document text for the given request.
	Generate(ctx context.Context, req entities.GenerationRequest) (string, error)
}
