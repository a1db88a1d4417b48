package loads

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/freightdock/drayman/internal/documents"
	"github.com/freightdock/drayman/pkg/pagination"
	"github.com/freightdock/drayman/pkg/query"
	"github.com/freightdock/drayman/pkg/repository"
)

const returning = `id, reference_number, carrier, notes, created_at, updated_at`

type repo struct {
	db         *sql.DB
	docs       documents.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a load repository implementing the System interface.
func New(
	db *sql.DB,
	docs documents.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		docs:       docs,
		logger:     logger.With("system", "loads"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
) (*pagination.PageResult[Load], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ReferenceNumber", "Carrier")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count loads: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanLoad)
	if err != nil {
		return nil, fmt.Errorf("query loads: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Load, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLoad)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &l, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Load, error) {
	if strings.TrimSpace(cmd.ReferenceNumber) == "" {
		return nil, fmt.Errorf("%w: reference number required", ErrInvalid)
	}

	q := `
		INSERT INTO loads(id, reference_number, carrier, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + returning

	args := []any{uuid.New(), cmd.ReferenceNumber, cmd.Carrier, cmd.Notes}

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLoad)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("load created", "id", l.ID, "reference", l.ReferenceNumber)
	return &l, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Load, error) {
	if cmd.ReferenceNumber != nil && strings.TrimSpace(*cmd.ReferenceNumber) == "" {
		return nil, fmt.Errorf("%w: reference number cannot be empty", ErrInvalid)
	}

	q := `
		UPDATE loads
		SET reference_number = COALESCE($1, reference_number),
			carrier = COALESCE($2, carrier),
			notes = COALESCE($3, notes),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + returning

	args := []any{cmd.ReferenceNumber, cmd.Carrier, cmd.Notes, id}

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLoad)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("load updated", "id", l.ID)
	return &l, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	// Linked documents survive load deletion; the FK sets load_id NULL.
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM loads WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("load deleted", "id", id)
	return nil
}

func (r *repo) Documents(ctx context.Context, id uuid.UUID) ([]documents.Document, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}
	return r.docs.ListByLoad(ctx, id)
}

func (r *repo) Completion(ctx context.Context, id uuid.UUID) (*Completion, error) {
	docs, err := r.Documents(ctx, id)
	if err != nil {
		return nil, err
	}

	c := ComputeCompletion(docs)
	return &c, nil
}
