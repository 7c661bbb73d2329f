package handlers

import (
	"github.com/ersonp/sop-core/internal/domain/entities"
	"github.com/ersonp/sop-core/internal/domain/services"
)

// AssetHandler exposes asset registry operations to the presentation layer.
type AssetHandler struct {
	registry *services.RegistryService
}

// NewAssetHandler creates a new asset handler.
func NewAssetHandler(registry *services.RegistryService) *AssetHandler {
	return &AssetHandler{registry: registry}
}

// List returns all assets, newest first.
func (h *AssetHandler) List() []entities.Asset {
	return h.registry.List()
}

// Add creates a new asset.
func (h *AssetHandler) Add(name, brand, model string) (entities.Asset, error) {
	return h.registry.Add(name, brand, model)
}

// Find returns the asset with the given ID.
func (h *AssetHandler) Find(id string) (entities.Asset, bool) {
	return h.registry.Find(id)
}
