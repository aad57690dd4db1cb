// Package routefs provides the public API for filesystem-convention
// route registration.
//
// This is the recommended import for most applications:
//
//	import "github.com/routefs-dev/routefs"
//
// Usage:
//
//	reg := routefs.NewRegistry()
//	reg.Register("departments/[id]/get", &routefs.Module{
//		ParamsSchema: routefs.Rules{"id": "required,number"},
//		Handler:      getDepartment,
//	})
//
//	mux := chi.NewRouter()
//	table, err := routefs.Mount(routefs.NewChiHost(mux), reg)
package routefs

import (
	"github.com/routefs-dev/routefs/pkg/router"
)

// =============================================================================
// Route modules and registration
// =============================================================================

// Registry maps route file paths to their modules.
type Registry = router.Registry

// NewRegistry creates an empty registry.
var NewRegistry = router.NewRegistry

// Module is the unit a route file contributes: optional schemas, an
// optional pre-hook, and the handler.
type Module = router.Module

// Direct wraps a bare handler into a module with no schemas or hook.
var Direct = router.Direct

// HandlerFunc is the route handler signature.
type HandlerFunc = router.HandlerFunc

// HookFunc runs before extraction and validation.
type HookFunc = router.HookFunc

// Request carries the extracted params, query, and decoded body.
type Request = router.Request

// =============================================================================
// Mounting
// =============================================================================

// Host abstracts the underlying HTTP framework.
type Host = router.Host

// NewChiHost adapts a chi router to the Host interface.
var NewChiHost = router.NewChiHost

// Mount discovers, compiles, and registers a routes tree.
var Mount = router.Mount

// Table is the immutable result of a mount.
type Table = router.Table

// Option configures Mount.
type Option = router.Option

// Mount options.
var (
	WithRoot            = router.WithRoot
	WithFS              = router.WithFS
	WithLogger          = router.WithLogger
	WithErrorTranslator = router.WithErrorTranslator
	WithDevLog          = router.WithDevLog
)

// DefaultRoot is the routes directory used when no override is given.
const DefaultRoot = router.DefaultRoot

// =============================================================================
// Validation
// =============================================================================

// Schema validates one member of a request.
type Schema = router.Schema

// Rules declares per-field validation tags.
type Rules = router.Rules

// FieldIssue is one field-level validation failure.
type FieldIssue = router.FieldIssue

// ValidationError aggregates every violation across all members.
type ValidationError = router.ValidationError

// =============================================================================
// Errors
// =============================================================================

// APIError is a failure with a declared HTTP status.
type APIError = router.APIError

// Error constructs an APIError with the given status and message.
var Error = router.Error

// Errorf constructs an APIError with a formatted message.
var Errorf = router.Errorf

// ErrorTranslator converts terminal failures into HTTP responses.
type ErrorTranslator = router.ErrorTranslator

// NewErrorTranslator builds the default translator.
var NewErrorTranslator = router.NewErrorTranslator
