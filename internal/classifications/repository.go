package classifications

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/freightdock/drayman/internal/classifier"
	"github.com/freightdock/drayman/internal/documents"
	"github.com/freightdock/drayman/internal/notifications"
	"github.com/freightdock/drayman/pkg/pagination"
	"github.com/freightdock/drayman/pkg/query"
	"github.com/freightdock/drayman/pkg/repository"
	"github.com/freightdock/drayman/pkg/storage"
)

const returning = `id, document_id, previous_type, new_type, confidence,
		classified_by, source, reason, created_at`

// classifyWorkers bounds concurrent classifier calls during a load-scoped run.
const classifyWorkers = 4

type repo struct {
	db         *sql.DB
	docs       documents.System
	storage    storage.System
	client     classifier.Client
	heuristic  classifier.Client
	notifier   notifications.Notifier
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a classification repository implementing the System interface.
// The client performs text-based classification; documents without
// extractable text are routed to a filename heuristic instead.
func New(
	db *sql.DB,
	docs documents.System,
	store storage.System,
	client classifier.Client,
	notifier notifications.Notifier,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		docs:       docs,
		storage:    store,
		client:     client,
		heuristic:  classifier.NewHeuristic(),
		notifier:   notifier,
		logger:     logger.With("system", "classifications"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) History(
	ctx context.Context,
	documentID uuid.UUID,
	page pagination.PageRequest,
) (*pagination.PageResult[HistoryEntry], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("DocumentID", documentID)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count history: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	entries, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanHistoryEntry)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	result := pagination.NewPageResult(entries, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Classify(
	ctx context.Context,
	documentID uuid.UUID,
	source Source,
) (*ClassifyResult, error) {
	if source != SourceAutomatic && source != SourceRetry {
		return nil, ErrInvalidSource
	}

	doc, err := r.docs.Find(ctx, documentID)
	if err != nil {
		return nil, err
	}

	text, err := r.loadText(ctx, doc)
	if err != nil {
		r.logger.Warn(
			"text extraction failed, falling back to filename heuristic",
			"id", doc.ID,
			"error", err,
		)
		text = ""
	}

	client := r.client
	if text == "" {
		client = r.heuristic
	}

	result, err := client.Classify(ctx, classifier.Input{
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Text:        text,
	})
	if err != nil {
		r.markError(ctx, doc.ID)
		return nil, fmt.Errorf("classify document %s: %w", doc.ID, err)
	}

	entry, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (HistoryEntry, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			`UPDATE documents
			SET doc_type = $1, confidence = $2, status = $3, updated_at = NOW()
			WHERE id = $4`,
			result.Type,
			result.Confidence,
			documents.StatusClassified,
			doc.ID,
		); err != nil {
			return HistoryEntry{}, err
		}

		return r.appendHistory(ctx, tx, historyRecord{
			documentID:   doc.ID,
			previousType: doc.Type,
			newType:      result.Type,
			confidence:   &result.Confidence,
			classifiedBy: SystemActor,
			source:       source,
			reason:       &result.Reason,
		})
	})
	if err != nil {
		return nil, repository.MapError(err, documents.ErrNotFound, documents.ErrDuplicate)
	}

	updated, err := r.docs.Find(ctx, doc.ID)
	if err != nil {
		return nil, err
	}

	r.logger.Info(
		"document classified",
		"id", doc.ID,
		"type", result.Type,
		"confidence", result.Confidence,
		"result_source", result.Source,
	)

	return &ClassifyResult{Document: updated, Entry: &entry}, nil
}

func (r *repo) ClassifyPending(ctx context.Context, loadID uuid.UUID) (*BatchClassifyResult, error) {
	docs, err := r.docs.ListByLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}

	var pending []documents.Document
	for _, d := range docs {
		if d.Status != documents.StatusClassified {
			pending = append(pending, d)
		}
	}

	outcomes := make([]ClassifyOutcome, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(classifyWorkers)

	for i, d := range pending {
		g.Go(func() error {
			result, err := r.Classify(gctx, d.ID, SourceAutomatic)

			outcomes[i] = ClassifyOutcome{DocumentID: d.ID, Result: result}
			if err != nil {
				outcomes[i].Error = err.Error()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &BatchClassifyResult{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Error == "" {
			batch.Classified++
		} else {
			batch.Failed++
		}
	}

	r.logger.Info(
		"load classification run complete",
		"load_id", loadID,
		"classified", batch.Classified,
		"failed", batch.Failed,
	)

	return batch, nil
}

func (r *repo) Reclassify(
	ctx context.Context,
	documentID uuid.UUID,
	cmd ReclassifyCommand,
) (*ClassifyResult, error) {
	newType, err := documents.ParseDocumentType(cmd.Type)
	if err != nil {
		return nil, err
	}

	doc, err := r.docs.Find(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if doc.Type != nil && *doc.Type == newType {
		return nil, fmt.Errorf("%w: %s", ErrNoChange, newType)
	}

	actor := cmd.ActorID
	if actor == "" {
		actor = SystemActor
	}

	var reason *string
	if cmd.Reason != "" {
		reason = &cmd.Reason
	}

	entry, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (HistoryEntry, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			`UPDATE documents
			SET doc_type = $1, confidence = NULL, status = $2,
				reclassified_by = $3, reclassified_at = NOW(),
				reclassification_reason = $4, updated_at = NOW()
			WHERE id = $5`,
			newType,
			documents.StatusClassified,
			actor,
			reason,
			doc.ID,
		); err != nil {
			return HistoryEntry{}, err
		}

		return r.appendHistory(ctx, tx, historyRecord{
			documentID:   doc.ID,
			previousType: doc.Type,
			newType:      newType,
			classifiedBy: actor,
			source:       SourceManual,
			reason:       reason,
		})
	})
	if err != nil {
		return nil, repository.MapError(err, documents.ErrNotFound, documents.ErrDuplicate)
	}

	updated, err := r.docs.Find(ctx, doc.ID)
	if err != nil {
		return nil, err
	}

	r.notifier.DocumentReclassified(ctx, notifications.ReclassifiedEvent{
		DocumentID:   doc.ID,
		Filename:     doc.Filename,
		PreviousType: doc.Type,
		NewType:      newType,
		Actor:        actor,
		Reason:       cmd.Reason,
		OccurredAt:   entry.CreatedAt,
	})

	r.logger.Info(
		"document reclassified",
		"id", doc.ID,
		"type", newType,
		"actor", actor,
	)

	return &ClassifyResult{Document: updated, Entry: &entry}, nil
}

func (r *repo) ReclassifyBatch(
	ctx context.Context,
	cmd BatchReclassifyCommand,
) (*BatchReclassifyResult, error) {
	if _, err := documents.ParseDocumentType(cmd.Type); err != nil {
		return nil, err
	}

	result := &BatchReclassifyResult{SkippedIDs: make([]uuid.UUID, 0)}

	for _, id := range cmd.DocumentIDs {
		_, err := r.Reclassify(ctx, id, ReclassifyCommand{
			Type:    cmd.Type,
			Reason:  cmd.Reason,
			ActorID: cmd.ActorID,
		})
		if err != nil {
			r.logger.Warn("batch reclassify skipped document", "id", id, "error", err)
			result.SkippedIDs = append(result.SkippedIDs, id)
			continue
		}
		result.Updated++
	}

	return result, nil
}

type historyRecord struct {
	documentID   uuid.UUID
	previousType *documents.DocumentType
	newType      documents.DocumentType
	confidence   *float64
	classifiedBy string
	source       Source
	reason       *string
}

func (r *repo) appendHistory(
	ctx context.Context,
	tx *sql.Tx,
	rec historyRecord,
) (HistoryEntry, error) {
	q := `
		INSERT INTO classification_history(
			document_id, previous_type, new_type, confidence,
			classified_by, source, reason
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + returning

	args := []any{
		rec.documentID,
		rec.previousType,
		rec.newType,
		rec.confidence,
		rec.classifiedBy,
		rec.source,
		rec.reason,
	}

	return repository.QueryOne(ctx, tx, q, args, scanHistoryEntry)
}

// loadText downloads the document blob and extracts its text content.
func (r *repo) loadText(ctx context.Context, doc *documents.Document) (string, error) {
	dl, err := r.storage.Download(ctx, doc.StorageKey)
	if err != nil {
		return "", fmt.Errorf("download document blob: %w", err)
	}
	defer dl.Body.Close()

	data, err := io.ReadAll(dl.Body)
	if err != nil {
		return "", fmt.Errorf("read document blob: %w", err)
	}

	return extractText(data, doc.ContentType)
}

// markError flips a document to error status outside the classify
// transaction. Failure here is logged but never masks the original error.
func (r *repo) markError(ctx context.Context, id uuid.UUID) {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE documents SET status = $1, updated_at = NOW() WHERE id = $2",
		documents.StatusError,
		id,
	)
	if err != nil {
		r.logger.Warn("failed to mark document errored", "id", id, "error", err)
	}
}
