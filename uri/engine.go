package uri

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/log"
	"github.com/ghettovoice/gourl/scheme"
)

// EngineOptions are options of an [Engine].
type EngineOptions struct {
	// Registry is the scheme table consulted for special schemes and default ports.
	// If nil, the [scheme.Default] is used.
	Registry *scheme.Registry
	// Logger is the logger used by the engine.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
}

func (o *EngineOptions) registry() *scheme.Registry {
	if o == nil || o.Registry == nil {
		return scheme.Default()
	}
	return o.Registry
}

func (o *EngineOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Engine parses, normalizes and resolves URIs against one scheme registry snapshot.
//
// Engines built against different registries may disagree on the same input,
// for example on the default port of "gopher" between [scheme.WHATWG] and [scheme.Legacy].
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	reg *scheme.Registry
	log *slog.Logger
}

// NewEngine creates a new URI [Engine].
// Options are optional, default options are used if nil (see [EngineOptions]).
func NewEngine(opts *EngineOptions) *Engine {
	return &Engine{
		reg: opts.registry(),
		log: opts.log(),
	}
}

var defEngine = sync.OnceValue(func() *Engine { return NewEngine(nil) })

// DefaultEngine returns the engine behind the package-level functions.
// It uses [scheme.Default] and the [log.Default] logger at the time of the first call.
func DefaultEngine() *Engine { return defEngine() }

// Registry returns the scheme registry of the engine.
func (e *Engine) Registry() *scheme.Registry { return e.reg }

// Parse parses an absolute URI from s.
//
// Leading and trailing spaces and C0 controls are trimmed, tab and newline chars are removed.
// The scheme is lowercased, other components are kept as written.
// An empty query or fragment is treated as absent, the port is never defaulted.
//
// On failure a [*ParseError] is returned wrapping one of [ErrEmptyInput], [ErrInvalidScheme],
// [ErrRelativeNotAllowed], [ErrInvalidHost] or [ErrInvalidPort].
func (e *Engine) Parse(s string) (URI, error) {
	u, err := parse(s)
	if err != nil {
		err = newParseError(s, err)
		e.log.LogAttrs(context.Background(), slog.LevelDebug, "failed to parse URI",
			slog.Any("engine", e),
			slog.String("input", s),
			slog.Any("error", err),
		)
		return URI{}, errtrace.Wrap(err)
	}
	return u, nil
}

func (e *Engine) String() string {
	if e == nil {
		return "uri.Engine(<nil>)"
	}
	return "uri.Engine(" + e.reg.Version() + ")"
}

// LogValue implements slog.LogValuer.
func (e *Engine) LogValue() slog.Value {
	if e == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("ptr", fmt.Sprintf("%p", e)),
		slog.Any("registry", e.reg),
	)
}
