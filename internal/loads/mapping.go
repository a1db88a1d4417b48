package loads

import (
	"database/sql"

	"github.com/freightdock/drayman/pkg/query"
	"github.com/freightdock/drayman/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "loads", "l").
	Project("id", "ID").
	Project("reference_number", "ReferenceNumber").
	Project("carrier", "Carrier").
	Project("notes", "Notes").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

func scanLoad(s repository.Scanner) (Load, error) {
	var (
		l       Load
		carrier sql.NullString
		notes   sql.NullString
	)

	err := s.Scan(
		&l.ID,
		&l.ReferenceNumber,
		&carrier,
		&notes,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return l, err
	}

	if carrier.Valid {
		l.Carrier = &carrier.String
	}
	if notes.Valid {
		l.Notes = &notes.String
	}

	return l, nil
}
