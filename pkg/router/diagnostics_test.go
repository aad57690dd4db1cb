package router

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestFormatRoute(t *testing.T) {
	def := RouteDefinition{
		Verb:    VerbPost,
		Pattern: mustCompile(t, "departments/[id]/employees/post"),
		Schema:  Compose(Rules{"departmentId": "number"}, nil, Rules{"name": "required"}),
		Before:  func(ctx context.Context, r *http.Request) error { return nil },
		Source:  "departments/[id]/employees/post",
	}

	line := FormatRoute(def)
	for _, want := range []string{"POST", "/departments/:departmentId/employees", "[params body]", "+hook"} {
		if !strings.Contains(line, want) {
			t.Errorf("FormatRoute() = %q, missing %q", line, want)
		}
	}
}

func TestFormatRouteBare(t *testing.T) {
	def := RouteDefinition{
		Verb:    VerbGet,
		Pattern: mustCompile(t, "health/get"),
		Source:  "health/get",
	}

	line := FormatRoute(def)
	if strings.Contains(line, "[") || strings.Contains(line, "+hook") {
		t.Errorf("FormatRoute() = %q, want no schema or hook markers", line)
	}
}
