package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/freightdock/drayman/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values", 0, 0, 1, 20},
		{"negative page", -5, 10, 1, 10},
		{"oversized page size", 1, 500, 1, 100},
		{"valid values untouched", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(cfg)

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 25}
	if got := req.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{
		"page":      {"2"},
		"page_size": {"10"},
		"search":    {"bol"},
		"sort":      {"-uploaded_at"},
	}

	req := pagination.PageRequestFromQuery(values, cfg)

	if req.Page != 2 {
		t.Errorf("Page = %d, want 2", req.Page)
	}
	if req.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", req.PageSize)
	}
	if req.Search == nil || *req.Search != "bol" {
		t.Errorf("Search = %v, want bol", req.Search)
	}
	if len(req.Sort) != 1 || !req.Sort[0].Descending {
		t.Errorf("Sort = %v, want descending uploaded_at", req.Sort)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"exact division", 100, 20, 5},
		{"remainder adds page", 101, 20, 6},
		{"empty result has one page", 0, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
		})
	}

	t.Run("nil data becomes empty slice", func(t *testing.T) {
		result := pagination.NewPageResult[string](nil, 0, 1, 20)
		if result.Data == nil {
			t.Error("Data should never be nil")
		}
	})
}

func TestSortFieldsUnmarshal(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		var s pagination.SortFields
		if err := json.Unmarshal([]byte(`"name,-created"`), &s); err != nil {
			t.Fatalf("unmarshal error = %v", err)
		}
		if len(s) != 2 || !s[1].Descending {
			t.Errorf("SortFields = %v, want two fields with second descending", s)
		}
	})

	t.Run("array form", func(t *testing.T) {
		var s pagination.SortFields
		data := `[{"Field": "name", "Descending": true}]`
		if err := json.Unmarshal([]byte(data), &s); err != nil {
			t.Fatalf("unmarshal error = %v", err)
		}
		if len(s) != 1 || s[0].Field != "name" || !s[0].Descending {
			t.Errorf("SortFields = %v", s)
		}
	})

	t.Run("invalid form", func(t *testing.T) {
		var s pagination.SortFields
		if err := json.Unmarshal([]byte(`42`), &s); err == nil {
			t.Error("unmarshal should fail for numeric input")
		}
	})
}

func TestConfigFinalize(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		c := pagination.Config{}
		if err := c.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if c.DefaultPageSize != 20 || c.MaxPageSize != 100 {
			t.Errorf("config = %+v, want defaults 20/100", c)
		}
	})

	t.Run("default exceeding max rejected", func(t *testing.T) {
		c := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
		if err := c.Finalize(nil); err == nil {
			t.Error("Finalize() should reject default > max")
		}
	})
}
