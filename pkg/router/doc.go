// Package router turns a directory tree of handler modules into wired
// HTTP route bindings.
//
// The router provides:
//   - File-system route discovery from a routes directory
//   - URL pattern compilation with ancestor parameter disambiguation
//   - Composite request validation (params, query, body)
//   - Per-route pre-hooks and a normalized error-response contract
//
// # File Structure Convention
//
// Routes are defined by verb files in the routes directory. The file stem
// (extension stripped) names the HTTP method; the containing directory
// path defines the URL:
//
//	routes/
//	├── departments/
//	│   ├── get.go                → GET  /departments
//	│   ├── post.go               → POST /departments
//	│   └── [id]/
//	│       ├── get.go            → GET  /departments/:id
//	│       └── employees/
//	│           └── [id]/
//	│               └── get.go    → GET  /departments/:departmentId/employees/:id
//	└── health/
//	    └── get.go                → GET  /health
//
// Recognized verb stems are get, post, put, patch, and delete. A file
// named index is reserved and always skipped; any other stem is skipped
// with a warning.
//
// # Parameters
//
// Dynamic segments use brackets: [id] becomes :id. Every parameter except
// the innermost is renamed to the singular of its owning directory joined
// with the capitalized bracket name, so nested identical bracket names
// never collide and the deepest resource always keeps the bare name its
// handler expects:
//
//	departments/[id]/employees/[id] → /departments/:departmentId/employees/:id
//
// Two bracket segments with no literal between them are outside the
// supported grammar and fail compilation.
//
// # Usage
//
//	reg := router.NewRegistry()
//	reg.Register("departments/[id]/get", &router.Module{
//	    ParamsSchema: router.Rules{"id": "required,number"},
//	    Handler: func(ctx context.Context, req *router.Request) (any, error) {
//	        return departments.Find(ctx, req.Params["id"])
//	    },
//	})
//
//	mux := chi.NewRouter()
//	table, err := router.Mount(router.NewChiHost(mux), reg,
//	    router.WithRoot("./routes"),
//	)
package router
