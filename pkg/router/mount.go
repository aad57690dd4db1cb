package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// DefaultRoot is the routes directory used when no override is given.
const DefaultRoot = "./routes"

// Host is the registration capability of the underlying HTTP framework:
// it binds a handler to a verb and compiled pattern and extracts path
// parameters at request time.
type Host interface {
	// Handle registers a handler for the method and pattern. Patterns use
	// :key parameter notation; hosts translate to their own syntax.
	Handle(method, pattern string, h http.HandlerFunc)

	// PathParams extracts the named path parameters from a request
	// dispatched through a pattern registered with Handle.
	PathParams(r *http.Request, keys []string) map[string]string
}

// ChiHost adapts a chi router to the Host interface.
type ChiHost struct {
	mux chi.Router
}

// NewChiHost wraps a chi router.
func NewChiHost(mux chi.Router) *ChiHost {
	return &ChiHost{mux: mux}
}

// Handle registers the handler, translating :key parameters to chi's
// {key} notation.
func (h *ChiHost) Handle(method, pattern string, fn http.HandlerFunc) {
	h.mux.MethodFunc(method, chiPattern(pattern), fn)
}

// PathParams extracts the named parameters via chi's route context.
func (h *ChiHost) PathParams(r *http.Request, keys []string) map[string]string {
	params := make(map[string]string, len(keys))
	for _, key := range keys {
		params[key] = chi.URLParam(r, key)
	}
	return params
}

// chiPattern converts ":key" segments to chi's "{key}" syntax.
func chiPattern(pattern string) string {
	segs := strings.Split(pattern, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") {
			segs[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segs, "/")
}

// Mounter holds the configuration assembled from Mount options.
type Mounter struct {
	root      string
	fsys      fs.FS
	log       zerolog.Logger
	translate ErrorTranslator
	devLog    bool
}

// Option configures Mount.
type Option func(*Mounter)

// WithRoot sets the routes directory (default "./routes").
func WithRoot(dir string) Option {
	return func(m *Mounter) { m.root = dir }
}

// WithFS mounts routes from an arbitrary filesystem instead of an OS
// directory. Takes precedence over WithRoot.
func WithFS(fsys fs.FS) Option {
	return func(m *Mounter) { m.fsys = fsys }
}

// WithLogger sets the logger for scan diagnostics and the operational
// error channel.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Mounter) { m.log = log }
}

// WithErrorTranslator overrides the terminal failure handler.
func WithErrorTranslator(t ErrorTranslator) Option {
	return func(m *Mounter) { m.translate = t }
}

// WithDevLog enables per-route registration diagnostics. Observability
// only: it never affects response content.
func WithDevLog(enabled bool) Option {
	return func(m *Mounter) { m.devLog = enabled }
}

// Mount discovers the routes tree, compiles each verb file into a
// RouteDefinition, and registers the request pipeline for every route on
// the host. Registration happens exactly once; the returned Table is
// immutable and safe for concurrent reads.
//
// A verb file with no registered module is skipped with a warning. A
// directory path the pattern compiler cannot express, or two files
// compiling to the same verb and pattern, abort the mount with an error.
func Mount(host Host, reg *Registry, opts ...Option) (*Table, error) {
	m := &Mounter{
		root: DefaultRoot,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.fsys == nil {
		m.fsys = os.DirFS(m.root)
	}
	if m.translate == nil {
		m.translate = NewErrorTranslator(m.log)
	}

	scanner := NewScannerFS(m.fsys)
	scanner.SetLogger(m.log)
	files, err := scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("scanning routes: %w", err)
	}

	defs := make([]RouteDefinition, 0, len(files))
	for _, file := range files {
		pattern, err := Compile(file)
		if err != nil {
			return nil, err
		}

		mod, ok := reg.Lookup(file.Path)
		if !ok {
			m.log.Warn().Str("route", file.Path).Msg("skipping route: no module registered")
			continue
		}

		defs = append(defs, RouteDefinition{
			Verb:    file.Verb,
			Pattern: pattern,
			Schema:  Compose(mod.ParamsSchema, mod.QuerySchema, mod.BodySchema),
			Before:  mod.Before,
			Handler: mod.Handler,
			Source:  file.Path,
		})
	}

	if err := validateTable(defs); err != nil {
		return nil, err
	}

	for _, def := range defs {
		host.Handle(def.Verb.Method(), def.Pattern.String(), pipeline(def, host, m.translate))
		if m.devLog {
			logRoute(m.log, def)
		}
	}

	return &Table{routes: defs}, nil
}
