package documents

import (
	"fmt"
	"strings"
)

// DocumentType is the closed classification taxonomy for freight documents.
type DocumentType string

const (
	TypeBOL     DocumentType = "bol"
	TypePOD     DocumentType = "pod"
	TypeInvoice DocumentType = "invoice"
	TypeOther   DocumentType = "other"
)

// Types lists all taxonomy members.
var Types = []DocumentType{TypeBOL, TypePOD, TypeInvoice, TypeOther}

// ParseDocumentType validates and normalizes a document type string.
// Returns ErrInvalidType for anything outside the taxonomy.
func ParseDocumentType(s string) (DocumentType, error) {
	t := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Valid reports whether t is a taxonomy member.
func (t DocumentType) Valid() bool {
	switch t {
	case TypeBOL, TypePOD, TypeInvoice, TypeOther:
		return true
	}
	return false
}

// Status is the document classification lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusClassified Status = "classified"
	StatusError      Status = "error"
)
