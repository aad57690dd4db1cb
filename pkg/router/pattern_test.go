package router

import (
	"errors"
	"strings"
	"testing"
)

func routeFile(relPath string) RouteFile {
	segs := strings.Split(relPath, "/")
	stem := segs[len(segs)-1]
	verb, _ := ParseVerb(stem)
	return RouteFile{
		Dir:  segs[:len(segs)-1],
		Stem: stem,
		Verb: verb,
		Path: relPath,
	}
}

func TestCompilePatterns(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"get", "/"},
		{"health/get", "/health"},
		{"departments/get", "/departments"},
		{"departments/list/get", "/departments/list"},
		{"departments/[id]/get", "/departments/:id"},
		{"departments/[id]/employees/get", "/departments/:departmentId/employees"},
		{"a/[id]/b/[id]/get", "/a/:aId/b/:id"},
		{"a/[id]/b/[id]/c/[id]/get", "/a/:aId/b/:bId/c/:id"},
		{"companies/[id]/offices/[officeId]/get", "/companies/:companyId/offices/:officeId"},
		{"[id]/get", "/:id"},
		// Depth determines renaming, not name collisions: a non-final
		// parameter is prefixed even when its bracket name is unique.
		{"users/[userId]/posts/[postId]/delete", "/users/:userUserId/posts/:postId"},
	}

	for _, tt := range tests {
		p, err := Compile(routeFile(tt.path))
		if err != nil {
			t.Errorf("Compile(%q) error: %v", tt.path, err)
			continue
		}
		if got := p.String(); got != tt.want {
			t.Errorf("Compile(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCompileParamBindings(t *testing.T) {
	p, err := Compile(routeFile("departments/[id]/employees/[id]/get"))
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	want := []ParamBinding{
		{Token: "[id]", Owner: "departments", Key: "departmentId"},
		{Token: "[id]", Owner: "employees", Key: "id"},
	}
	if len(p.Params) != len(want) {
		t.Fatalf("len(Params) = %d, want %d", len(p.Params), len(want))
	}
	for i, b := range p.Params {
		if b != want[i] {
			t.Errorf("Params[%d] = %+v, want %+v", i, b, want[i])
		}
	}

	keys := p.ParamKeys()
	if len(keys) != 2 || keys[0] != "departmentId" || keys[1] != "id" {
		t.Errorf("ParamKeys() = %v, want [departmentId id]", keys)
	}
}

func TestCompileUnsupportedGrammar(t *testing.T) {
	tests := []struct {
		path   string
		reason string
	}{
		{"a/[x]/[y]/get", "consecutive parameter segments"},
		{"[id]/sub/get", "no owning literal"},
		{"a/[]/get", "empty parameter name"},
		{"a/[id/get", "unbalanced brackets"},
	}

	for _, tt := range tests {
		_, err := Compile(routeFile(tt.path))
		if err == nil {
			t.Errorf("Compile(%q) succeeded, want error about %s", tt.path, tt.reason)
			continue
		}
		var perr *PatternError
		if !errors.As(err, &perr) {
			t.Errorf("Compile(%q) error type = %T, want *PatternError", tt.path, err)
		}
	}
}

func TestSingularize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"departments", "department"},
		{"employees", "employee"},
		{"companies", "company"},
		{"status", "statu"}, // naive rule: callers pick resource names accordingly
		{"address", "address"},
		{"s", "s"},
		{"user", "user"},
	}

	for _, tt := range tests {
		if got := singularize(tt.in); got != tt.want {
			t.Errorf("singularize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPatternStringRoot(t *testing.T) {
	var p Pattern
	if got := p.String(); got != "/" {
		t.Errorf("empty pattern String() = %q, want \"/\"", got)
	}
}
