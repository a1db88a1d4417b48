package classifications

import (
	"database/sql"

	"github.com/freightdock/drayman/internal/documents"
	"github.com/freightdock/drayman/pkg/query"
	"github.com/freightdock/drayman/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "classification_history", "ch").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("previous_type", "PreviousType").
	Project("new_type", "NewType").
	Project("confidence", "Confidence").
	Project("classified_by", "ClassifiedBy").
	Project("source", "Source").
	Project("reason", "Reason").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

func scanHistoryEntry(s repository.Scanner) (HistoryEntry, error) {
	var (
		e          HistoryEntry
		prevType   sql.NullString
		confidence sql.NullFloat64
		reason     sql.NullString
	)

	err := s.Scan(
		&e.ID,
		&e.DocumentID,
		&prevType,
		&e.NewType,
		&confidence,
		&e.ClassifiedBy,
		&e.Source,
		&reason,
		&e.CreatedAt,
	)
	if err != nil {
		return e, err
	}

	if prevType.Valid {
		t := documents.DocumentType(prevType.String)
		e.PreviousType = &t
	}
	if confidence.Valid {
		e.Confidence = &confidence.Float64
	}
	if reason.Valid {
		e.Reason = &reason.String
	}

	return e, nil
}
