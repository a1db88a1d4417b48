package query_test

import (
	"strings"
	"testing"

	"github.com/freightdock/drayman/pkg/query"
)

func ptr[T any](v T) *T { return &v }

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "documents", "d").
		Project("id", "ID").
		Project("filename", "Filename").
		Project("status", "Status")
}

func TestBuild(t *testing.T) {
	t.Run("no conditions", func(t *testing.T) {
		sql, args := query.NewBuilder(testProjection()).Build()

		want := "SELECT d.id, d.filename, d.status FROM public.documents d"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("conditions numbered sequentially", func(t *testing.T) {
		sql, args := query.
			NewBuilder(testProjection()).
			WhereEquals("Status", "pending").
			WhereContains("Filename", ptr("bol")).
			Build()

		if !strings.Contains(sql, "d.status = $1") {
			t.Errorf("sql = %q, want status = $1", sql)
		}
		if !strings.Contains(sql, "d.filename ILIKE $2") {
			t.Errorf("sql = %q, want filename ILIKE $2", sql)
		}
		if len(args) != 2 {
			t.Errorf("args length = %d, want 2", len(args))
		}
	})

	t.Run("default sort applied", func(t *testing.T) {
		sql, _ := query.NewBuilder(
			testProjection(),
			query.SortField{Field: "Filename", Descending: true},
		).Build()

		if !strings.HasSuffix(sql, "ORDER BY d.filename DESC") {
			t.Errorf("sql = %q, want trailing ORDER BY d.filename DESC", sql)
		}
	})

	t.Run("explicit order overrides default", func(t *testing.T) {
		sql, _ := query.NewBuilder(
			testProjection(),
			query.SortField{Field: "Filename", Descending: true},
		).OrderByFields([]query.SortField{{Field: "ID"}}).Build()

		if !strings.HasSuffix(sql, "ORDER BY d.id ASC") {
			t.Errorf("sql = %q, want trailing ORDER BY d.id ASC", sql)
		}
	})
}

func TestBuildCount(t *testing.T) {
	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Status", "pending").
		BuildCount()

	want := "SELECT COUNT(*) FROM public.documents d WHERE d.status = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args length = %d, want 1", len(args))
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection()).BuildPage(3, 10)

	if !strings.Contains(sql, "LIMIT 10 OFFSET 20") {
		t.Errorf("sql = %q, want LIMIT 10 OFFSET 20", sql)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", 42)

	want := "SELECT d.id, d.filename, d.status FROM public.documents d WHERE d.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != 42 {
		t.Errorf("args = %v, want [42]", args)
	}
}

func TestWhereEqualsSkipsNil(t *testing.T) {
	var status *string
	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Status", status).
		Build()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("sql = %q, want no WHERE clause for nil value", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestWhereNullable(t *testing.T) {
	t.Run("nil yields IS NULL", func(t *testing.T) {
		sql, args := query.
			NewBuilder(testProjection()).
			WhereNullable("Status", nil).
			Build()

		if !strings.Contains(sql, "d.status IS NULL") {
			t.Errorf("sql = %q, want IS NULL clause", sql)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("value yields equality", func(t *testing.T) {
		sql, args := query.
			NewBuilder(testProjection()).
			WhereNullable("Status", "pending").
			Build()

		if !strings.Contains(sql, "d.status = $1") {
			t.Errorf("sql = %q, want equality clause", sql)
		}
		if len(args) != 1 {
			t.Errorf("args length = %d, want 1", len(args))
		}
	})
}

func TestWhereSearch(t *testing.T) {
	sql, args := query.
		NewBuilder(testProjection()).
		WhereSearch(ptr("bol"), "Filename", "Status").
		Build()

	if !strings.Contains(sql, "(d.filename ILIKE $1 OR d.status ILIKE $2)") {
		t.Errorf("sql = %q, want OR search clause", sql)
	}
	if len(args) != 2 {
		t.Fatalf("args length = %d, want 2", len(args))
	}
	if args[0] != "%bol%" {
		t.Errorf("args[0] = %v, want %%bol%%", args[0])
	}
}

func TestWhereIn(t *testing.T) {
	sql, args := query.
		NewBuilder(testProjection()).
		WhereIn("Status", []any{"pending", "error"}).
		Build()

	if !strings.Contains(sql, "d.status IN ($1, $2)") {
		t.Errorf("sql = %q, want IN clause", sql)
	}
	if len(args) != 2 {
		t.Errorf("args length = %d, want 2", len(args))
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty", "", nil},
		{"single ascending", "name", []query.SortField{{Field: "name"}}},
		{"single descending", "-created", []query.SortField{{Field: "created", Descending: true}}},
		{
			"mixed list",
			"name,-created",
			[]query.SortField{
				{Field: "name"},
				{Field: "created", Descending: true},
			},
		},
		{"whitespace and empties", " name , ", []query.SortField{{Field: "name"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)

			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("field %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestProjectionJoin(t *testing.T) {
	proj := query.
		NewProjectionMap("public", "documents", "d").
		Project("id", "ID").
		Join("public", "loads", "l", "INNER JOIN", "l.id = d.load_id").
		Project("reference_number", "ReferenceNumber")

	from := proj.From()
	want := "public.documents d INNER JOIN public.loads l ON l.id = d.load_id"
	if from != want {
		t.Errorf("From() = %q, want %q", from, want)
	}

	if col := proj.Column("ReferenceNumber"); col != "l.reference_number" {
		t.Errorf("Column(ReferenceNumber) = %q, want l.reference_number", col)
	}
	if col := proj.Column("ID"); col != "d.id" {
		t.Errorf("Column(ID) = %q, want d.id", col)
	}
}

func TestColumnUnmappedPassThrough(t *testing.T) {
	proj := testProjection()
	if col := proj.Column("unmapped"); col != "unmapped" {
		t.Errorf("Column(unmapped) = %q, want pass-through", col)
	}
}
