package uri

import (
	"context"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/log"
)

// Resolve resolves ref against base with the [DefaultEngine].
// See [Engine.Resolve].
func Resolve[T ~string | ~[]byte](base URI, ref T) (URI, error) {
	return errtrace.Wrap2(DefaultEngine().Resolve(base, string(ref)))
}

// Resolve resolves the reference ref against base following RFC 3986 Section 5.2
// and returns the normalized result.
//
// A reference with its own scheme is parsed and normalized, the base is ignored.
// A base without authority accepts only an empty or a fragment-only reference.
// A relative path is merged with the directory of the base path and dot segments are removed,
// so resolving "../c" against "https://example.com/a/b/" gives "https://example.com/a/c".
//
// A reference with an empty path and no fragment keeps the fragment of base,
// even when it carries its own query. RFC 3986 takes the fragment from the reference only.
//
// On failure a [*ResolveError] is returned wrapping [ErrInvalidReference] or [ErrNoBaseAuthority].
func (e *Engine) Resolve(base URI, ref string) (URI, error) {
	u, err := e.resolve(base, ref)
	if err != nil {
		err = &ResolveError{Base: base, Reference: ref, Err: err}
		e.log.LogAttrs(context.Background(), slog.LevelDebug, "failed to resolve URI reference",
			slog.Any("engine", e),
			slog.Any("base", base),
			slog.Any("base_parts", log.FmtValue(base, false)),
			slog.String("reference", ref),
			slog.Any("error", err),
		)
		return URI{}, errtrace.Wrap(err)
	}
	return u, nil
}

func (e *Engine) resolve(base URI, ref string) (URI, error) {
	if base.scheme == "" {
		return URI{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("base URI has no scheme"))
	}

	s := clean(ref)
	if i := schemeEnd(s); i >= 0 {
		if !grammar.IsScheme(s[:i]) {
			return URI{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidReference,
				errorutil.NewWrapperError(ErrInvalidScheme, "%q", s[:i])))
		}
		u, err := parse(s)
		if err != nil {
			return URI{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidReference, newParseError(ref, err)))
		}
		return e.Normalize(u), nil
	}

	r, err := parseReference(s)
	if err != nil {
		return URI{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidReference, err))
	}

	if !base.hasAuth && (r.hasAuth || r.path != "" || r.hasQuery) {
		return URI{}, errtrace.Wrap(ErrNoBaseAuthority)
	}

	t := base.Clone()
	switch {
	case r.hasAuth:
		t.user, t.addr, t.hasAuth = r.user, r.addr, true
		t.path = r.path
		t.query, t.hasQuery = r.query, r.hasQuery
		t.frag, t.hasFrag = r.frag, r.hasFrag
	case r.path == "":
		if r.hasQuery {
			t.query, t.hasQuery = r.query, true
		}
		if r.hasFrag {
			t.frag, t.hasFrag = r.frag, true
		}
	default:
		if r.path[0] == '/' {
			t.path = r.path
		} else {
			t.path = mergePaths(base.path, r.path)
		}
		t.query, t.hasQuery = r.query, r.hasQuery
		t.frag, t.hasFrag = r.frag, r.hasFrag
	}
	return e.Normalize(t), nil
}

// mergePaths implements RFC 3986 Section 5.2.3 for a base with authority.
func mergePaths(base, ref string) string {
	if base == "" {
		return "/" + ref
	}
	return base[:strings.LastIndexByte(base, '/')+1] + ref
}
