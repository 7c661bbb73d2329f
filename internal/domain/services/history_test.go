package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/sop-core/internal/domain/entities"
	"github.com/ersonp/sop-core/internal/domain/mocks"
)

func testDoc(id, assetID string) entities.Document {
	return entities.Document{
		ID:        id,
		AssetID:   assetID,
		Title:     "Titolo " + id,
		Content:   "# Titolo " + id + "\ncorpo",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Type:      entities.DocumentTypeStandard,
	}
}

func TestHistoryService_Load_Empty(t *testing.T) {
	svc := NewHistoryService(&mocks.KVStore{}, nil)

	docs, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestHistoryService_AppendThenLoad_RoundTrip(t *testing.T) {
	store := &mocks.KVStore{}
	ctx := context.Background()

	svc := NewHistoryService(store, nil)
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Append(ctx, testDoc("d1", "a1")))
	require.NoError(t, svc.Append(ctx, testDoc("d2", "a1")))

	// Simulate a restart: a fresh service over the same store.
	restarted := NewHistoryService(store, nil)
	docs, err := restarted.Load(ctx)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "d2", docs[0].ID, "just-appended record comes first")
	assert.Equal(t, "d1", docs[1].ID)
}

func TestHistoryService_Append_PersistsWholeSequence(t *testing.T) {
	store := &mocks.KVStore{}
	ctx := context.Background()

	svc := NewHistoryService(store, nil)
	require.NoError(t, svc.Append(ctx, testDoc("d1", "a1")))

	before := len(svc.Documents())
	require.NoError(t, svc.Append(ctx, testDoc("d2", "a2")))

	assert.Len(t, svc.Documents(), before+1)
	assert.Contains(t, store.Values[HistoryKey], `"d1"`)
	assert.Contains(t, store.Values[HistoryKey], `"d2"`)
}

func TestHistoryService_Append_WriteFailureKeepsMemory(t *testing.T) {
	store := &mocks.KVStore{SetErr: errors.New("disk full")}
	svc := NewHistoryService(store, nil)

	err := svc.Append(context.Background(), testDoc("d1", "a1"))
	require.Error(t, err)
	assert.Empty(t, svc.Documents(), "in-memory state must not advance past a failed write")
}

func TestHistoryService_FilterByAsset(t *testing.T) {
	store := &mocks.KVStore{}
	ctx := context.Background()

	svc := NewHistoryService(store, nil)
	require.NoError(t, svc.Append(ctx, testDoc("d1", "A")))
	require.NoError(t, svc.Append(ctx, testDoc("d2", "B")))
	require.NoError(t, svc.Append(ctx, testDoc("d3", "")))
	require.NoError(t, svc.Append(ctx, testDoc("d4", "A")))

	t.Run("exact matches in order", func(t *testing.T) {
		got := svc.FilterByAsset("A")
		require.Len(t, got, 2)
		assert.Equal(t, "d4", got[0].ID)
		assert.Equal(t, "d1", got[1].ID)
	})

	t.Run("zero matches is empty, not an error", func(t *testing.T) {
		assert.Empty(t, svc.FilterByAsset("dangling-id"))
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, svc.FilterByAsset("A"), svc.FilterByAsset("A"))
	})
}

func TestHistoryService_Load_CorruptPayload(t *testing.T) {
	store := &mocks.KVStore{Values: map[string]string{
		HistoryKey: "{this is not json",
	}}

	svc := NewHistoryService(store, nil)
	docs, err := svc.Load(context.Background())

	var corrupt *entities.CorruptStateError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, HistoryKey, corrupt.Key)
	assert.Empty(t, docs, "corrupt payload falls back to an empty history")
	assert.Empty(t, svc.Documents())
}

func TestHistoryService_Load_OldKeyIsOrphaned(t *testing.T) {
	// History written under a previous schema key is intentionally
	// invisible: the version suffix is a cutoff, not a migration.
	store := &mocks.KVStore{Values: map[string]string{
		"sop_history_v1": `[{"id":"old"}]`,
	}}

	svc := NewHistoryService(store, nil)
	docs, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestHistoryService_Clear(t *testing.T) {
	store := &mocks.KVStore{}
	ctx := context.Background()

	svc := NewHistoryService(store, nil)
	require.NoError(t, svc.Append(ctx, testDoc("d1", "A")))

	require.NoError(t, svc.Clear(ctx))
	assert.Empty(t, svc.Documents())

	_, ok := store.Values[HistoryKey]
	assert.False(t, ok)
}

func TestHistoryService_Find(t *testing.T) {
	store := &mocks.KVStore{}
	ctx := context.Background()

	svc := NewHistoryService(store, nil)
	require.NoError(t, svc.Append(ctx, testDoc("d1", "A")))

	doc, ok := svc.Find("d1")
	require.True(t, ok)
	assert.Equal(t, "Titolo d1", doc.Title)

	_, ok = svc.Find("missing")
	assert.False(t, ok)
}
