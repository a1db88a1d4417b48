// Package loads manages freight loads and their document completion state.
// A load is complete when every required document type is present and
// classified among its linked documents.
package loads

import (
	"time"

	"github.com/google/uuid"
)

// Load represents a freight shipment that documents attach to.
type Load struct {
	ID              uuid.UUID `json:"id"`
	ReferenceNumber string    `json:"reference_number"`
	Carrier         *string   `json:"carrier"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateCommand carries the fields for load registration.
// ReferenceNumber must be unique across loads.
type CreateCommand struct {
	ReferenceNumber string  `json:"reference_number"`
	Carrier         *string `json:"carrier"`
	Notes           *string `json:"notes"`
}

// UpdateCommand carries mutable load fields. Nil fields are left unchanged.
type UpdateCommand struct {
	ReferenceNumber *string `json:"reference_number"`
	Carrier         *string `json:"carrier"`
	Notes           *string `json:"notes"`
}
