// Package entities contains core domain data structures.
package entities

import "time"

// DocumentType categorizes a generated document.
type DocumentType string

// The closed set of document types. An absent type means standard.
const (
	DocumentTypeStandard       DocumentType = "standard"
	DocumentTypeTechnicalSheet DocumentType = "technical_sheet"
	DocumentTypeInstruction    DocumentType = "instruction"
)

// ValidDocumentTypes lists all accepted document types.
var ValidDocumentTypes = []DocumentType{
	DocumentTypeStandard,
	DocumentTypeTechnicalSheet,
	DocumentTypeInstruction,
}

// Valid reports whether t is one of the accepted document types.
func (t DocumentType) Valid() bool {
	for _, v := range ValidDocumentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Document represents a generated Standard Operating Procedure stored with
// the inputs that produced it. A Document is immutable once built: the
// history only ever prepends or removes whole records.
type Document struct {
	ID        string    `json:"id"`
	AssetID   string    `json:"asset_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Inputs retained for audit and redisplay, even if the asset changes later.
	Description string       `json:"description"`
	Brand       string       `json:"brand"`
	Model       string       `json:"model"`
	Specs       string       `json:"specs"`
	Type        DocumentType `json:"type,omitempty"`
}

// GenerationRequest carries the user inputs for a single generation call.
type GenerationRequest struct {
	AssetID     string
	Description string
	Brand       string
	Model       string
	Specs       string
	DocType     DocumentType
}
