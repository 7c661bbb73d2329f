package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentType_Valid(t *testing.T) {
	tests := []struct {
		docType DocumentType
		want    bool
	}{
		{DocumentTypeStandard, true},
		{DocumentTypeTechnicalSheet, true},
		{DocumentTypeInstruction, true},
		{DocumentType(""), false},
		{DocumentType("pamphlet"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.docType.Valid(), "type %q", tt.docType)
	}
}

func TestDocument_JSONOmitsEmptyAssetID(t *testing.T) {
	data, err := json.Marshal(Document{ID: "d1", Title: "Titolo"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "asset_id")
}
