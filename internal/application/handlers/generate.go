// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/sop-core/internal/domain/entities"
	"github.com/ersonp/sop-core/internal/domain/ports"
	"github.com/ersonp/sop-core/internal/domain/services"
)

// GenerateHandler runs the full generation flow: validate inputs, call the
// generator, build the record, and append it to the history.
type GenerateHandler struct {
	generator ports.Generator
	history   *services.HistoryService
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(generator ports.Generator, history *services.HistoryService) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		history:   history,
	}
}

// Handle generates a document for the request and persists it. The returned
// document is the stored record.
func (h *GenerateHandler) Handle(ctx context.Context, req entities.GenerationRequest) (entities.Document, error) {
	if strings.TrimSpace(req.Description) == "" {
		return entities.Document{}, &entities.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if req.AssetID == "" {
		return entities.Document{}, &entities.PreconditionError{Reason: "no asset selected"}
	}
	if req.DocType == "" {
		req.DocType = entities.DocumentTypeStandard
	}
	if !req.DocType.Valid() {
		return entities.Document{}, &entities.ValidationError{
			Field:  "type",
			Reason: fmt.Sprintf("%q is not one of %v", req.DocType, entities.ValidDocumentTypes),
		}
	}

	text, err := h.generator.Generate(ctx, req)
	if err != nil {
		return entities.Document{}, err
	}

	doc, err := services.BuildRecord(text, req)
	if err != nil {
		return entities.Document{}, err
	}

	if err := h.history.Append(ctx, doc); err != nil {
		return entities.Document{}, fmt.Errorf("saving document: %w", err)
	}

	return doc, nil
}
