package uri

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"
)

// PortOrDefault returns the port of u or the default port of its scheme with the [DefaultEngine].
// See [Engine.PortOrDefault].
func PortOrDefault(u URI) (uint16, bool) { return DefaultEngine().PortOrDefault(u) }

// PortOrDefaultText parses s and returns its port or the default port of its scheme
// with the [DefaultEngine].
func PortOrDefaultText[T ~string | ~[]byte](s T) (uint16, bool, error) {
	return errtrace.Wrap3(DefaultEngine().PortOrDefaultText(string(s)))
}

// PortOrDefault returns the port written in u.
// Otherwise it returns the default port of the scheme if the scheme is special in the engine registry.
// A scheme which is unknown or not special has no default port, even if a port is historically associated with it.
func (e *Engine) PortOrDefault(u URI) (uint16, bool) {
	if p, ok := u.Port(); ok {
		return p, true
	}
	p, ok := e.reg.DefaultPort(u.scheme)
	if ok {
		e.log.LogAttrs(context.Background(), slog.LevelDebug, "default port inferred",
			slog.Any("engine", e),
			slog.String("scheme", u.scheme),
			slog.Int("port", int(p)),
		)
	}
	return p, ok
}

// PortOrDefaultText parses s and returns [Engine.PortOrDefault] of the result.
func (e *Engine) PortOrDefaultText(s string) (uint16, bool, error) {
	u, err := e.Parse(s)
	if err != nil {
		return 0, false, errtrace.Wrap(err)
	}
	p, ok := e.PortOrDefault(u)
	return p, ok, nil
}
