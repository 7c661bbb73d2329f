package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/sop-core/internal/domain/entities"
	"github.com/ersonp/sop-core/internal/domain/ports"
)

// HistoryKey is the fixed storage key for the serialized document history.
// The version suffix is a schema cutoff: bumping it orphans history written
// under the old key instead of migrating it.
const HistoryKey = "sop_history_v2"

// HistoryService owns the persisted, newest-first sequence of documents.
// Every mutation rewrites the whole blob under HistoryKey synchronously.
type HistoryService struct {
	store  ports.KVStore
	logger *zap.Logger
	docs   []entities.Document
}

// NewHistoryService creates a history service on top of the given store.
func NewHistoryService(store ports.KVStore, logger *zap.Logger) *HistoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryService{store: store, logger: logger}
}

// Load reads the persisted history into memory and returns it. An absent
// key yields an empty history. An unparseable payload does not abort
// startup: the service logs a warning, starts empty, and returns a
// CorruptStateError alongside the empty sequence so callers can surface it.
func (s *HistoryService) Load(ctx context.Context) ([]entities.Document, error) {
	raw, ok, err := s.store.Get(ctx, HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	if !ok {
		s.docs = nil
		return []entities.Document{}, nil
	}

	var docs []entities.Document
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		s.logger.Warn("stored history is unreadable, starting empty",
			zap.String("key", HistoryKey),
			zap.Error(err))
		s.docs = nil
		return []entities.Document{}, &entities.CorruptStateError{Key: HistoryKey, Err: err}
	}

	s.docs = docs
	return s.Documents(), nil
}

// Documents returns a copy of the in-memory sequence, newest first.
func (s *HistoryService) Documents() []entities.Document {
	out := make([]entities.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Append prepends doc to the history and persists the whole updated
// sequence. The in-memory state only advances if the write succeeds.
func (s *HistoryService) Append(ctx context.Context, doc entities.Document) error {
	next := make([]entities.Document, 0, len(s.docs)+1)
	next = append(next, doc)
	next = append(next, s.docs...)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := s.store.Set(ctx, HistoryKey, string(data)); err != nil {
		return fmt.Errorf("persisting history: %w", err)
	}

	s.docs = next
	return nil
}

// FilterByAsset returns, newest first, exactly the documents whose AssetID
// equals assetID. A dangling asset ID is valid and yields an empty result.
func (s *HistoryService) FilterByAsset(assetID string) []entities.Document {
	out := make([]entities.Document, 0)
	for _, d := range s.docs {
		if d.AssetID == assetID {
			out = append(out, d)
		}
	}
	return out
}

// Find returns the document with the given ID.
func (s *HistoryService) Find(id string) (entities.Document, bool) {
	for _, d := range s.docs {
		if d.ID == id {
			return d, true
		}
	}
	return entities.Document{}, false
}

// Clear removes the whole history, in memory and in storage.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, HistoryKey); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	s.docs = nil
	return nil
}
