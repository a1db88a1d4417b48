package classifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/freightdock/drayman/pkg/pagination"
)

// System defines the public contract for classification operations.
type System interface {
	Handler() *Handler

	// History returns the append-only classification trail for a document,
	// newest first.
	History(
		ctx context.Context,
		documentID uuid.UUID,
		page pagination.PageRequest,
	) (*pagination.PageResult[HistoryEntry], error)

	// Classify runs the classifier against a stored document and persists
	// the outcome. Source distinguishes initial automatic runs from
	// user-requested retries.
	Classify(ctx context.Context, documentID uuid.UUID, source Source) (*ClassifyResult, error)

	// ClassifyPending classifies every unclassified document linked to a
	// load, reporting per-document outcomes.
	ClassifyPending(ctx context.Context, loadID uuid.UUID) (*BatchClassifyResult, error)

	// Reclassify applies a manual type override with an audit entry.
	Reclassify(ctx context.Context, documentID uuid.UUID, cmd ReclassifyCommand) (*ClassifyResult, error)

	// ReclassifyBatch applies one override across multiple documents with
	// partial-success semantics.
	ReclassifyBatch(ctx context.Context, cmd BatchReclassifyCommand) (*BatchReclassifyResult, error)
}
