// Package services contains domain business logic.
package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ersonp/sop-core/internal/domain/entities"
)

// RegistryService manages the in-memory asset registry. The registry is
// session-scoped: assets are seeded at startup and new ones are prepended,
// but nothing is persisted across runs. Document history, by contrast, is
// durable and keeps referencing asset IDs even after a restart.
type RegistryService struct {
	assets []entities.Asset
}

// NewRegistryService creates a registry seeded with the given assets.
func NewRegistryService(seed []entities.Asset) *RegistryService {
	assets := make([]entities.Asset, len(seed))
	copy(assets, seed)
	return &RegistryService{assets: assets}
}

// DefaultAssets returns the built-in seed assets. IDs are fixed so that
// generated documents stay linked to seed assets across sessions.
func DefaultAssets() []entities.Asset {
	return []entities.Asset{
		{ID: "7b4f2c1e-8d3a-4e6f-9a0b-1c2d3e4f5a6b", Name: "Compressore Rotativo", Brand: "Atlas Copco", Model: "GA11"},
		{ID: "3e9d8c7b-6a5f-4e3d-2c1b-0a9f8e7d6c5b", Name: "Pompa Centrifuga", Brand: "Grundfos", Model: "CR 32-4"},
		{ID: "5a1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d", Name: "Carrello Elevatore", Brand: "Toyota", Model: "8FBE20"},
	}
}

// List returns the assets in creation order, newest additions first.
func (s *RegistryService) List() []entities.Asset {
	out := make([]entities.Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// Add creates a new asset and prepends it to the registry. Names need not
// be unique; only the ID is.
func (s *RegistryService) Add(name, brand, model string) (entities.Asset, error) {
	if strings.TrimSpace(name) == "" {
		return entities.Asset{}, &entities.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	asset := entities.Asset{
		ID:    uuid.New().String(),
		Name:  name,
		Brand: brand,
		Model: model,
	}

	s.assets = append([]entities.Asset{asset}, s.assets...)
	return asset, nil
}

// Find returns the asset with the given ID.
func (s *RegistryService) Find(id string) (entities.Asset, bool) {
	for _, a := range s.assets {
		if a.ID == id {
			return a, true
		}
	}
	return entities.Asset{}, false
}
