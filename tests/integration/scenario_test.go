package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/sop-core/internal/application/handlers"
	"github.com/ersonp/sop-core/internal/domain/entities"
	"github.com/ersonp/sop-core/internal/domain/mocks"
	"github.com/ersonp/sop-core/internal/domain/services"
	"github.com/ersonp/sop-core/internal/infrastructure/config"
	"github.com/ersonp/sop-core/internal/infrastructure/storage/sqlite"
)

func newStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	store, err := sqlite.NewStore(config.StorageConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

// TestGenerateScenario runs the full flow against real sqlite storage:
// create an asset, generate a document, verify the stored record, then
// reload from disk as a fresh session would.
func TestGenerateScenario(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sop.db")

	store := newStore(t, dbPath)
	history := services.NewHistoryService(store, nil)
	_, err := history.Load(ctx)
	require.NoError(t, err)

	registry := services.NewRegistryService(services.DefaultAssets())
	asset, err := registry.Add("Compressor-1", "Atlas", "GX7")
	require.NoError(t, err)

	gen := &mocks.Generator{
		Text: "# Manutenzione Preventiva Compressor-1\n## Obiettivo\nGarantire continuità operativa.",
	}
	handler := handlers.NewGenerateHandler(gen, history)

	doc, err := handler.Handle(ctx, entities.GenerationRequest{
		AssetID:     asset.ID,
		Description: "Manutenzione preventiva trimestrale",
		Brand:       asset.Brand,
		Model:       asset.Model,
		Specs:       "Coppia 45 Nm",
		DocType:     entities.DocumentTypeStandard,
	})
	require.NoError(t, err)

	assert.Equal(t, asset.ID, doc.AssetID)
	assert.Equal(t, "Manutenzione Preventiva Compressor-1", doc.Title)
	assert.Equal(t, entities.DocumentTypeStandard, doc.Type)
	assert.Equal(t, "GX7", doc.Model)

	filtered := history.FilterByAsset(asset.ID)
	require.Len(t, filtered, 1)
	assert.Equal(t, doc.ID, filtered[0].ID)

	// Restart: a fresh service over the same database file.
	restarted := services.NewHistoryService(store, nil)
	docs, err := restarted.Load(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID, docs[0].ID)
	assert.Equal(t, doc.Content, docs[0].Content)
}

// TestCorruptHistoryScenario verifies that a corrupted blob on disk does
// not prevent startup: the history starts empty and the error is typed.
func TestCorruptHistoryScenario(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, filepath.Join(t.TempDir(), "sop.db"))

	require.NoError(t, store.Set(ctx, services.HistoryKey, "{definitely not json"))

	history := services.NewHistoryService(store, nil)
	docs, err := history.Load(ctx)

	var corrupt *entities.CorruptStateError
	require.ErrorAs(t, err, &corrupt)
	assert.Empty(t, docs)

	// The session remains fully usable afterwards.
	gen := &mocks.Generator{Text: "# Ripristino\ncorpo"}
	handler := handlers.NewGenerateHandler(gen, history)
	doc, err := handler.Handle(ctx, entities.GenerationRequest{
		AssetID:     "a1",
		Description: "Ripristino dopo errore",
	})
	require.NoError(t, err)

	reloaded, err := services.NewHistoryService(store, nil).Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, doc.ID, reloaded[0].ID)
}
