package documents

import (
	"database/sql"
	"net/url"

	"github.com/google/uuid"

	"github.com/freightdock/drayman/pkg/query"
	"github.com/freightdock/drayman/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("doc_type", "Type").
	Project("status", "Status").
	Project("confidence", "Confidence").
	Project("load_id", "LoadID").
	Project("reclassified_by", "ReclassifiedBy").
	Project("reclassified_at", "ReclassifiedAt").
	Project("reclassification_reason", "ReclassificationReason").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored. Status, Type, and LoadID use exact matching;
// Filename uses case-insensitive contains matching. Unlinked, when true,
// restricts results to documents with no load association.
type Filters struct {
	Status   *Status       `json:"status,omitempty"`
	Type     *DocumentType `json:"type,omitempty"`
	Filename *string       `json:"filename,omitempty"`
	LoadID   *uuid.UUID    `json:"load_id,omitempty"`
	Unlinked bool          `json:"unlinked,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("Status", f.Status).
		WhereEquals("Type", f.Type).
		WhereContains("Filename", f.Filename)

	if f.Unlinked {
		b.WhereNullable("LoadID", nil)
	} else {
		b.WhereEquals("LoadID", f.LoadID)
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Invalid enum or UUID values are ignored rather than rejected.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		status := Status(s)
		f.Status = &status
	}

	if t := values.Get("type"); t != "" {
		if parsed, err := ParseDocumentType(t); err == nil {
			f.Type = &parsed
		}
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if l := values.Get("load_id"); l != "" {
		if id, err := uuid.Parse(l); err == nil {
			f.LoadID = &id
		}
	}

	if values.Get("unlinked") == "true" {
		f.Unlinked = true
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var (
		d          Document
		docType    sql.NullString
		confidence sql.NullFloat64
		loadID     uuid.NullUUID
		reclassBy  sql.NullString
		reclassAt  sql.NullTime
		reason     sql.NullString
	)

	err := s.Scan(
		&d.ID,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.PageCount,
		&d.StorageKey,
		&docType,
		&d.Status,
		&confidence,
		&loadID,
		&reclassBy,
		&reclassAt,
		&reason,
		&d.UploadedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return d, err
	}

	if docType.Valid {
		t := DocumentType(docType.String)
		d.Type = &t
	}
	if confidence.Valid {
		d.Confidence = &confidence.Float64
	}
	if loadID.Valid {
		d.LoadID = &loadID.UUID
	}
	if reclassBy.Valid {
		d.ReclassifiedBy = &reclassBy.String
	}
	if reclassAt.Valid {
		t := reclassAt.Time.UTC()
		d.ReclassifiedAt = &t
	}
	if reason.Valid {
		d.ReclassificationReason = &reason.String
	}

	return d, nil
}
