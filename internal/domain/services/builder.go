package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/sop-core/internal/domain/entities"
)

// reHeading matches the first level-1 markdown heading in the generated text.
var reHeading = regexp.MustCompile(`(?m)^#\s+(.+)$`)

const (
	// titleFallbackPrefix labels titles derived from the description when
	// the generated text carries no heading.
	titleFallbackPrefix = "SOP: "
	// titleFallbackChars is how many description characters the fallback
	// title keeps before the ellipsis.
	titleFallbackChars = 30
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// BuildRecord transforms raw generated text plus the originating request
// into an immutable Document. Content is stored verbatim, including its own
// leading heading; stripping it for display is a presentation concern.
func BuildRecord(rawText string, req entities.GenerationRequest) (entities.Document, error) {
	if strings.TrimSpace(rawText) == "" {
		return entities.Document{}, &entities.PreconditionError{Reason: "generated text is empty"}
	}
	if req.AssetID == "" {
		return entities.Document{}, &entities.PreconditionError{Reason: "no asset selected"}
	}

	docType := req.DocType
	if docType == "" {
		docType = entities.DocumentTypeStandard
	}

	return entities.Document{
		ID:          uuid.New().String(),
		AssetID:     req.AssetID,
		Title:       deriveTitle(rawText, req.Description),
		Content:     rawText,
		CreatedAt:   timeNow(),
		Description: req.Description,
		Brand:       req.Brand,
		Model:       req.Model,
		Specs:       req.Specs,
		Type:        docType,
	}, nil
}

// deriveTitle picks the document title. Precedence: the first level-1
// heading in the text, else a fixed label plus the truncated description.
// Either candidate has literal ** markers stripped and whitespace trimmed;
// the result is never empty.
func deriveTitle(rawText, description string) string {
	fallback := titleFallbackPrefix + truncateRunes(description, titleFallbackChars) + "..."

	candidate := fallback
	if m := reHeading.FindStringSubmatch(rawText); m != nil {
		candidate = m[1]
	}

	candidate = strings.TrimSpace(strings.ReplaceAll(candidate, "**", ""))
	if candidate == "" {
		return fallback
	}
	return candidate
}

// truncateRunes returns the first n characters of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
