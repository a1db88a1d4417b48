// Package classifications implements the classification audit trail and
// orchestration for Drayman: invoking the classifier against stored
// documents, applying manual reclassifications, and recording every type
// transition as an immutable history entry.
package classifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/freightdock/drayman/internal/documents"
)

// Source identifies who or what performed a classification.
type Source string

const (
	SourceAutomatic Source = "automatic"
	SourceManual    Source = "manual"
	SourceRetry     Source = "retry"
)

// Valid reports whether s is a known classification source.
func (s Source) Valid() bool {
	switch s {
	case SourceAutomatic, SourceManual, SourceRetry:
		return true
	}
	return false
}

// SystemActor is recorded as the classifier identity for automatic runs.
const SystemActor = "drayman"

// HistoryEntry is one immutable record of a document type transition.
// Entries are append-only: nothing in this package updates or deletes them.
type HistoryEntry struct {
	ID           uuid.UUID               `json:"id"`
	DocumentID   uuid.UUID               `json:"document_id"`
	PreviousType *documents.DocumentType `json:"previous_type"`
	NewType      documents.DocumentType  `json:"new_type"`
	Confidence   *float64                `json:"confidence"`
	ClassifiedBy string                  `json:"classified_by"`
	Source       Source                  `json:"source"`
	Reason       *string                 `json:"reason"`
	CreatedAt    time.Time               `json:"created_at"`
}

// ClassifyResult pairs the updated document with the history entry
// appended for the transition.
type ClassifyResult struct {
	Document *documents.Document `json:"document"`
	Entry    *HistoryEntry       `json:"entry"`
}

// ReclassifyCommand carries a manual classification override.
// Type is validated against the taxonomy before any write occurs.
type ReclassifyCommand struct {
	Type    string `json:"type"`
	Reason  string `json:"reason"`
	ActorID string `json:"actor_id"`
}

// BatchReclassifyCommand applies one target type and reason uniformly to
// a set of documents.
type BatchReclassifyCommand struct {
	DocumentIDs []uuid.UUID `json:"document_ids"`
	Type        string      `json:"type"`
	Reason      string      `json:"reason"`
	ActorID     string      `json:"actor_id"`
}

// BatchReclassifyResult reports partial success: per-item failures are
// collected as skipped ids rather than aborting the batch.
type BatchReclassifyResult struct {
	Updated    int         `json:"updated"`
	SkippedIDs []uuid.UUID `json:"skipped_ids"`
}

// ClassifyOutcome reports the result of classifying one document within a
// load-scoped batch run.
type ClassifyOutcome struct {
	DocumentID uuid.UUID       `json:"document_id"`
	Result     *ClassifyResult `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// BatchClassifyResult aggregates outcomes of a load-scoped classification run.
type BatchClassifyResult struct {
	Outcomes   []ClassifyOutcome `json:"outcomes"`
	Classified int               `json:"classified"`
	Failed     int               `json:"failed"`
}
