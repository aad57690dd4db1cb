package router

import (
	"context"
	"net/http"
)

// Verb is one of the recognized HTTP verb file stems.
type Verb string

const (
	VerbGet    Verb = "get"
	VerbPost   Verb = "post"
	VerbPut    Verb = "put"
	VerbPatch  Verb = "patch"
	VerbDelete Verb = "delete"
)

// ParseVerb maps a file stem to a Verb. The second return is false for
// stems outside the recognized set.
func ParseVerb(stem string) (Verb, bool) {
	switch Verb(stem) {
	case VerbGet, VerbPost, VerbPut, VerbPatch, VerbDelete:
		return Verb(stem), true
	}
	return "", false
}

// Method returns the HTTP method name for the verb.
func (v Verb) Method() string {
	switch v {
	case VerbGet:
		return http.MethodGet
	case VerbPost:
		return http.MethodPost
	case VerbPut:
		return http.MethodPut
	case VerbPatch:
		return http.MethodPatch
	case VerbDelete:
		return http.MethodDelete
	}
	return ""
}

// hasBody reports whether requests for the verb are expected to carry a
// request body worth decoding.
func (v Verb) hasBody() bool {
	switch v {
	case VerbPost, VerbPut, VerbPatch, VerbDelete:
		return true
	}
	return false
}

// RouteFile is a discovered verb-file candidate.
type RouteFile struct {
	// Dir is the directory segment chain relative to the routes root.
	Dir []string

	// Stem is the file name with the extension stripped.
	Stem string

	// Verb is the parsed HTTP verb.
	Verb Verb

	// Path is the full relative path without extension, e.g.
	// "departments/[id]/get". This is the registry lookup key.
	Path string
}

// Request carries the decoded request data handed to a handler.
type Request struct {
	// Params holds the path parameters under their disambiguated keys.
	Params map[string]string

	// Query holds the first value of each query parameter.
	Query map[string]string

	// Body is the decoded JSON request body, or nil when absent.
	Body any

	// Raw is the underlying HTTP request.
	Raw *http.Request
}

// HandlerFunc is the route handler signature. Returning a nil value sends
// an empty success response (201 for post, 204 otherwise); any other value
// is sent as a JSON body with status 200.
type HandlerFunc func(ctx context.Context, req *Request) (any, error)

// HookFunc runs before validation and handling. It may inspect or log the
// raw request, or short-circuit the pipeline by returning an error.
type HookFunc func(ctx context.Context, r *http.Request) error

// Module is the structured export of one verb file: up to three optional
// schema descriptors, an optional pre-hook, and a mandatory handler.
type Module struct {
	ParamsSchema Schema
	QuerySchema  Schema
	BodySchema   Schema
	Before       HookFunc
	Handler      HandlerFunc
}

// Direct wraps a bare handler into a Module with no validation and no
// pre-hook.
func Direct(h HandlerFunc) *Module {
	return &Module{Handler: h}
}

// RouteDefinition is a compiled, ready-to-register route. It is built once
// during Mount and immutable thereafter.
type RouteDefinition struct {
	// Verb is the HTTP verb the route answers.
	Verb Verb

	// Pattern is the compiled URL pattern.
	Pattern Pattern

	// Schema is the composite validator, or nil when the module declares
	// no schema members.
	Schema *CompositeSchema

	// Before is the optional pre-hook.
	Before HookFunc

	// Handler is the route handler.
	Handler HandlerFunc

	// Source is the route-file path the definition was compiled from.
	Source string
}

// Table is the immutable set of routes produced by Mount.
type Table struct {
	routes []RouteDefinition
}

// Routes returns a copy of the route definitions in registration order.
func (t *Table) Routes() []RouteDefinition {
	out := make([]RouteDefinition, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.routes)
}
