// Package documents implements the freight document domain for Drayman.
// It provides types, data access, and business logic for document upload,
// registration, load association, and blob storage integration.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded freight document with its metadata,
// blob storage reference, classification state, and optional load association.
type Document struct {
	ID          uuid.UUID     `json:"id"`
	Filename    string        `json:"filename"`
	ContentType string        `json:"content_type"`
	SizeBytes   int64         `json:"size_bytes"`
	PageCount   *int          `json:"page_count"`
	StorageKey  string        `json:"storage_key"`
	Type        *DocumentType `json:"type"`
	Status      Status        `json:"status"`
	Confidence  *float64      `json:"confidence"`
	LoadID      *uuid.UUID    `json:"load_id"`

	ReclassifiedBy         *string    `json:"reclassified_by"`
	ReclassifiedAt         *time.Time `json:"reclassified_at"`
	ReclassificationReason *string    `json:"reclassification_reason"`

	UploadedAt time.Time `json:"uploaded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new document.
// Data holds the raw file bytes. PageCount is optional and may be extracted
// by the caller via pdfcpu; nil values are stored as NULL. LoadID links the
// document to a load at upload time when provided.
type CreateCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	LoadID      *uuid.UUID
	PageCount   *int
}
