package routefs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"

	"github.com/routefs-dev/routefs"
)

// End-to-end through the root package: register a module, mount a tree
// from an in-memory filesystem, dispatch a request.
func TestRootPackageMountAndDispatch(t *testing.T) {
	fsys := fstest.MapFS{
		"widgets/[id]/get.go": &fstest.MapFile{Data: []byte("package routes\n")},
	}

	reg := routefs.NewRegistry()
	reg.Register("widgets/[id]/get", &routefs.Module{
		ParamsSchema: routefs.Rules{"id": "required,number"},
		Handler: func(ctx context.Context, req *routefs.Request) (any, error) {
			return map[string]string{"id": req.Params["id"]}, nil
		},
	})

	mux := chi.NewRouter()
	table, err := routefs.Mount(routefs.NewChiHost(mux), reg, routefs.WithFS(fsys))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("table.Len() = %d, want 1", table.Len())
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/widgets/42", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/widgets/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id status = %d, want 400", rec.Code)
	}
}

func TestRootPackageDeclaredError(t *testing.T) {
	fsys := fstest.MapFS{
		"widgets/get.go": &fstest.MapFile{Data: []byte("package routes\n")},
	}

	reg := routefs.NewRegistry()
	reg.Register("widgets/get", routefs.Direct(func(ctx context.Context, req *routefs.Request) (any, error) {
		return nil, routefs.Error(http.StatusForbidden, "no access")
	}))

	mux := chi.NewRouter()
	if _, err := routefs.Mount(routefs.NewChiHost(mux), reg, routefs.WithFS(fsys)); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/widgets", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
