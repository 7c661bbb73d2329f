package handlers

import (
	"github.com/ersonp/sop-core/internal/domain/entities"
	"github.com/ersonp/sop-core/internal/domain/services"
)

// HistoryHandler exposes read access to the document history.
type HistoryHandler struct {
	history *services.HistoryService
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(history *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List returns all documents, newest first.
func (h *HistoryHandler) List() []entities.Document {
	return h.history.Documents()
}

// ForAsset returns the documents linked to the given asset, newest first.
func (h *HistoryHandler) ForAsset(assetID string) []entities.Document {
	return h.history.FilterByAsset(assetID)
}

// Find returns the document with the given ID.
func (h *HistoryHandler) Find(id string) (entities.Document, bool) {
	return h.history.Find(id)
}
