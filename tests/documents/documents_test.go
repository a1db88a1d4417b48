package documents_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/freightdock/drayman/internal/documents"
	"github.com/freightdock/drayman/pkg/query"
)

func ptr[T any](v T) *T { return &v }

func TestParseDocumentType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    documents.DocumentType
		wantErr bool
	}{
		{"bol", "bol", documents.TypeBOL, false},
		{"pod", "pod", documents.TypePOD, false},
		{"invoice", "invoice", documents.TypeInvoice, false},
		{"other", "other", documents.TypeOther, false},
		{"uppercase normalized", "BOL", documents.TypeBOL, false},
		{"surrounding whitespace", "  pod  ", documents.TypePOD, false},
		{"unknown type", "receipt", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := documents.ParseDocumentType(tt.input)

			if tt.wantErr {
				if !errors.Is(err, documents.ErrInvalidType) {
					t.Fatalf("error = %v, want ErrInvalidType", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseDocumentType(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDocumentType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDocumentTypeValid(t *testing.T) {
	for _, dt := range documents.Types {
		if !dt.Valid() {
			t.Errorf("%q should be valid", dt)
		}
	}

	if documents.DocumentType("manifest").Valid() {
		t.Error("manifest should not be valid")
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", documents.ErrNotFound, http.StatusNotFound},
		{"duplicate", documents.ErrDuplicate, http.StatusConflict},
		{"file too large", documents.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"invalid file", documents.ErrInvalidFile, http.StatusBadRequest},
		{"invalid type", documents.ErrInvalidType, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", documents.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := documents.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all params present", func(t *testing.T) {
		id := uuid.New()
		values := url.Values{
			"status":   {"classified"},
			"type":     {"bol"},
			"filename": {"lading"},
			"load_id":  {id.String()},
		}

		f := documents.FiltersFromQuery(values)

		if f.Status == nil || *f.Status != documents.StatusClassified {
			t.Errorf("Status = %v, want classified", f.Status)
		}
		if f.Type == nil || *f.Type != documents.TypeBOL {
			t.Errorf("Type = %v, want bol", f.Type)
		}
		if f.Filename == nil || *f.Filename != "lading" {
			t.Errorf("Filename = %v, want lading", f.Filename)
		}
		if f.LoadID == nil || *f.LoadID != id {
			t.Errorf("LoadID = %v, want %s", f.LoadID, id)
		}
	})

	t.Run("empty params yield nil fields", func(t *testing.T) {
		f := documents.FiltersFromQuery(url.Values{})

		if f.Status != nil || f.Type != nil || f.Filename != nil || f.LoadID != nil {
			t.Errorf("expected all nil fields, got %+v", f)
		}
		if f.Unlinked {
			t.Error("Unlinked should default to false")
		}
	})

	t.Run("invalid type ignored", func(t *testing.T) {
		f := documents.FiltersFromQuery(url.Values{"type": {"receipt"}})
		if f.Type != nil {
			t.Errorf("Type = %v, want nil for invalid type", f.Type)
		}
	})

	t.Run("invalid load_id ignored", func(t *testing.T) {
		f := documents.FiltersFromQuery(url.Values{"load_id": {"not-a-uuid"}})
		if f.LoadID != nil {
			t.Errorf("LoadID = %v, want nil for invalid UUID", f.LoadID)
		}
	})

	t.Run("unlinked flag", func(t *testing.T) {
		f := documents.FiltersFromQuery(url.Values{"unlinked": {"true"}})
		if !f.Unlinked {
			t.Error("Unlinked should be true")
		}
	})
}

func TestFiltersApply(t *testing.T) {
	proj := query.
		NewProjectionMap("public", "documents", "d").
		Project("status", "Status").
		Project("doc_type", "Type").
		Project("filename", "Filename").
		Project("load_id", "LoadID")

	t.Run("no filters produces no WHERE clause", func(t *testing.T) {
		b := query.NewBuilder(proj)
		documents.Filters{}.Apply(b)
		sql, args := b.Build()

		if strings.Contains(sql, "WHERE") {
			t.Errorf("sql = %q, want no WHERE clause", sql)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("status and type filters", func(t *testing.T) {
		b := query.NewBuilder(proj)
		documents.Filters{
			Status: ptr(documents.StatusPending),
			Type:   ptr(documents.TypePOD),
		}.Apply(b)
		_, args := b.Build()

		if len(args) != 2 {
			t.Fatalf("args length = %d, want 2", len(args))
		}
	})

	t.Run("filename contains filter", func(t *testing.T) {
		b := query.NewBuilder(proj)
		documents.Filters{Filename: ptr("bol")}.Apply(b)
		sql, args := b.Build()

		if !strings.Contains(sql, "ILIKE") {
			t.Errorf("sql = %q, want ILIKE clause", sql)
		}
		if len(args) != 1 || args[0] != "%bol%" {
			t.Errorf("args = %v, want [%%bol%%]", args)
		}
	})

	t.Run("unlinked produces IS NULL with no args", func(t *testing.T) {
		b := query.NewBuilder(proj)
		documents.Filters{Unlinked: true}.Apply(b)
		sql, args := b.Build()

		if !strings.Contains(sql, "d.load_id IS NULL") {
			t.Errorf("sql = %q, want load_id IS NULL clause", sql)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("load_id equals filter", func(t *testing.T) {
		id := uuid.New()
		b := query.NewBuilder(proj)
		documents.Filters{LoadID: &id}.Apply(b)
		_, args := b.Build()

		if len(args) != 1 {
			t.Fatalf("args length = %d, want 1", len(args))
		}
	})
}
