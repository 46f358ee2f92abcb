package uri

import (
	"strings"

	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/util"
)

// Normalize returns the canonical form of u with the [DefaultEngine].
// See [Engine.Normalize].
func Normalize(u URI) URI { return DefaultEngine().Normalize(u) }

// Equivalent reports whether a and b have the same canonical form with the [DefaultEngine].
func Equivalent(a, b URI) bool { return DefaultEngine().Equivalent(a, b) }

// Normalize returns the canonical form of u. The rules are applied in order:
//
//  1. scheme and host are lowercased, percent-encoding of the host is normalized first;
//  2. the port is dropped if the scheme is special and the port is its default one;
//  3. in userinfo, path, query and fragment triplets of unreserved chars are decoded,
//     other triplets get uppercase hex and unsafe raw bytes are encoded;
//  4. dot segments are removed from the path of an authority URI;
//  5. an empty path of a special authority URI becomes "/".
//
// Normalize is idempotent.
func (e *Engine) Normalize(u URI) URI {
	u.scheme = util.LCase(u.scheme)
	if u.hasAuth {
		u.addr = u.addr.normalize()
		if p, ok := u.addr.Port(); ok {
			if def, ok := e.reg.DefaultPort(u.scheme); ok && def == p {
				u.addr = u.addr.withoutPort()
			}
		}
		u.user = u.user.normalize()
	}

	u.path = grammar.NormalizeEscapes(u.path, shouldEscapePathChar)
	if u.hasQuery {
		u.query = grammar.NormalizeEscapes(u.query, shouldEscapeQueryChar)
	}
	if u.hasFrag {
		u.frag = grammar.NormalizeEscapes(u.frag, nil)
	}

	if u.hasAuth {
		u.path = removeDotSegments(u.path)
		if u.path == "" && e.reg.IsSpecial(u.scheme) {
			u.path = "/"
		}
	}
	return u
}

// Canonical returns the text of the normalized u.
func (e *Engine) Canonical(u URI) string { return e.Normalize(u).String() }

// Equivalent reports whether a and b are equal after normalization.
func (e *Engine) Equivalent(a, b URI) bool { return e.Normalize(a).Equal(e.Normalize(b)) }

func shouldEscapePathChar(c byte) bool { return grammar.IsUnsafe(c) || c == '?' || c == '#' }

func shouldEscapeQueryChar(c byte) bool { return grammar.IsUnsafe(c) || c == '#' }

// removeDotSegments implements RFC 3986 Section 5.2.4 over a segment stack.
// A ".." above the root is dropped.
func removeDotSegments(p string) string {
	if p == "" {
		return p
	}

	abs := p[0] == '/'
	if abs {
		p = p[1:]
	}
	segs := strings.Split(p, "/")
	out := make([]string, 0, len(segs))
	for i, seg := range segs {
		switch seg {
		case ".":
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
			continue
		}
		// a trailing dot segment leaves the directory slash behind
		if i == len(segs)-1 {
			out = append(out, "")
		}
	}

	res := strings.Join(out, "/")
	if abs {
		res = "/" + res
	}
	return res
}
