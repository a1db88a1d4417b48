// Package notifications defines the outbound notification hook consumed by
// external delivery collaborators (email, webhooks). The core publishes an
// event after every successful manual reclassification; delivery itself is
// out of scope and pluggable.
package notifications

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/freightdock/drayman/internal/documents"
)

// ReclassifiedEvent describes a completed classification change.
type ReclassifiedEvent struct {
	DocumentID   uuid.UUID               `json:"document_id"`
	Filename     string                  `json:"filename"`
	PreviousType *documents.DocumentType `json:"previous_type"`
	NewType      documents.DocumentType  `json:"new_type"`
	Actor        string                  `json:"actor"`
	Reason       string                  `json:"reason"`
	OccurredAt   time.Time               `json:"occurred_at"`
}

// Notifier consumes classification change events. Implementations must not
// block the calling request path on slow delivery.
type Notifier interface {
	DocumentReclassified(ctx context.Context, e ReclassifiedEvent)
}

type logNotifier struct {
	logger *slog.Logger
}

// NewLog creates a Notifier that records events to the structured log.
func NewLog(logger *slog.Logger) Notifier {
	return &logNotifier{logger: logger.With("system", "notifications")}
}

func (n *logNotifier) DocumentReclassified(ctx context.Context, e ReclassifiedEvent) {
	n.logger.InfoContext(ctx, "document reclassified",
		"document_id", e.DocumentID,
		"filename", e.Filename,
		"previous_type", e.PreviousType,
		"new_type", e.NewType,
		"actor", e.Actor,
	)
}
