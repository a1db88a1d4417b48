package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freightdock/drayman/pkg/routes"
)

func handlerWriting(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/loads",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: handlerWriting("list")},
			{Method: "GET", Pattern: "/{id}", Handler: handlerWriting("find")},
			{Method: "POST", Pattern: "", Handler: handlerWriting("create")},
		},
	})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"list", "GET", "/loads", http.StatusOK, "list"},
		{"find", "GET", "/loads/abc", http.StatusOK, "find"},
		{"create", "POST", "/loads", http.StatusOK, "create"},
		{"method mismatch", "DELETE", "/loads", http.StatusMethodNotAllowed, ""},
		{"unknown path", "GET", "/nothing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRegisterNestedGroups(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/classifications",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/reclassify", Handler: handlerWriting("batch")},
		},
		Children: []routes.Group{
			{
				Prefix: "/documents",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/{id}/history", Handler: handlerWriting("history")},
				},
			},
		},
	})

	req := httptest.NewRequest("GET", "/classifications/documents/abc/history", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "history" {
		t.Errorf("body = %q, want history", rec.Body.String())
	}
}
