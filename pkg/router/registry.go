package router

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps route-file paths to their handler modules. Go has no
// dynamic module loading, so the registry is the seam where handler code
// meets the file tree: each verb file in the routes directory is expected
// to have a module registered under its relative path.
type Registry struct {
	modules map[string]*Module
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// Register binds a module to a route-file path such as
// "departments/[id]/get". The path is the file's relative path under the
// routes root with the extension stripped. Registering a nil module, a
// module without a handler, or the same path twice panics: these are
// wiring mistakes that must surface at startup.
func (r *Registry) Register(routePath string, m *Module) {
	key := normalizeRoutePath(routePath)
	if m == nil {
		panic(fmt.Sprintf("router: nil module registered for %q", key))
	}
	if m.Handler == nil {
		panic(fmt.Sprintf("router: module for %q has no handler", key))
	}
	if _, exists := r.modules[key]; exists {
		panic(fmt.Sprintf("router: duplicate module registration for %q", key))
	}
	r.modules[key] = m
}

// RegisterFunc binds a bare handler with no validation and no pre-hook.
func (r *Registry) RegisterFunc(routePath string, h HandlerFunc) {
	r.Register(routePath, Direct(h))
}

// Lookup resolves the module for a route-file path.
func (r *Registry) Lookup(routePath string) (*Module, bool) {
	m, ok := r.modules[normalizeRoutePath(routePath)]
	return m, ok
}

// Paths returns the registered route-file paths in sorted order.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.modules))
	for p := range r.modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// normalizeRoutePath strips the decorations callers tend to include so
// "./departments/get.go" and "departments/get" resolve identically.
func normalizeRoutePath(p string) string {
	p = strings.TrimPrefix(p, "./")
	p = strings.Trim(p, "/")
	i := strings.LastIndex(p, "/")
	base := p[i+1:]
	if j := strings.LastIndex(base, "."); j > 0 {
		p = p[:i+1] + base[:j]
	}
	return p
}
