package loads

import (
	"context"

	"github.com/google/uuid"

	"github.com/freightdock/drayman/internal/documents"
	"github.com/freightdock/drayman/pkg/pagination"
)

// System defines the public contract for load domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
	) (*pagination.PageResult[Load], error)

	Find(ctx context.Context, id uuid.UUID) (*Load, error)
	Create(ctx context.Context, cmd CreateCommand) (*Load, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Load, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Documents returns every document linked to a load.
	Documents(ctx context.Context, id uuid.UUID) ([]documents.Document, error)

	// Completion evaluates the completion policy for a load.
	Completion(ctx context.Context, id uuid.UUID) (*Completion, error)
}
