package uri

//go:generate go tool errtrace -w .

import (
	"strings"

	"github.com/ghettovoice/gourl/form"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/util"
)

// URI is an absolute URI:
//
//	scheme ":" ["//" [userinfo "@"] host [":" port]] path ["?" query] ["#" fragment]
//
// URI is an immutable value, the With* methods return modified copies.
// The zero value is an empty URI which is not valid.
type URI struct {
	scheme   string
	user     UserInfo
	addr     Addr
	hasAuth  bool
	path     string
	query    string
	hasQuery bool
	frag     string
	hasFrag  bool
}

// Scheme returns the lowercase scheme.
func (u URI) Scheme() string { return u.scheme }

// User returns the userinfo of the authority, zero if absent.
func (u URI) User() UserInfo { return u.user }

// Host returns the host and whether the URI has an authority.
// An empty host of an authority URI, as in "file:///tmp", is reported as ("", true).
// IPv6 literals are returned without brackets.
func (u URI) Host() (string, bool) { return u.addr.host, u.hasAuth }

// Port returns the port written in the URI text and whether it is set.
// It never falls back to the scheme default, see [Engine.PortOrDefault].
func (u URI) Port() (uint16, bool) { return u.addr.Port() }

// Addr returns the host and port pair of the authority.
func (u URI) Addr() Addr { return u.addr }

// HasAuthority reports whether the URI has an authority component.
func (u URI) HasAuthority() bool { return u.hasAuth }

// Path returns the path, possibly empty.
func (u URI) Path() string { return u.path }

// Segments returns the path segments still percent-encoded.
// The leading "/" of an absolute path does not produce a segment, an empty path has no segments.
func (u URI) Segments() []string {
	if u.path == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(u.path, "/"), "/")
}

// Query returns the raw query and whether it is present.
func (u URI) Query() (string, bool) { return u.query, u.hasQuery }

// QueryPairs decodes the query as application/x-www-form-urlencoded name-value pairs.
func (u URI) QueryPairs() []form.Pair {
	if !u.hasQuery {
		return nil
	}
	return form.Parse(u.query)
}

// Fragment returns the raw fragment and whether it is present.
func (u URI) Fragment() (string, bool) { return u.frag, u.hasFrag }

// WithScheme returns a copy of the URI with the scheme replaced, lowercased.
func (u URI) WithScheme(scheme string) URI {
	u.scheme = util.LCase(scheme)
	return u
}

// WithUser returns a copy of the URI with the userinfo replaced.
// The URI gets an empty authority if it had none.
func (u URI) WithUser(ui UserInfo) URI {
	u = u.withAuthority()
	u.user = ui
	return u
}

// WithHost returns a copy of the URI with the host replaced, the port is kept.
// The URI gets an authority if it had none.
func (u URI) WithHost(host string) URI {
	u = u.withAuthority()
	port, hasPort := u.addr.Port()
	u.addr = Host(host)
	if hasPort {
		u.addr = HostPort(u.addr.host, port)
	}
	return u
}

// WithPort returns a copy of the URI with the port set.
// The URI gets an empty authority if it had none.
func (u URI) WithPort(port uint16) URI {
	u = u.withAuthority()
	u.addr = HostPort(u.addr.host, port)
	return u
}

// WithoutPort returns a copy of the URI without the port.
func (u URI) WithoutPort() URI {
	u.addr = u.addr.withoutPort()
	return u
}

// WithAddr returns a copy of the URI with host and port replaced by addr.
func (u URI) WithAddr(addr Addr) URI {
	u = u.withAuthority()
	u.addr = addr.Clone()
	return u
}

// WithoutAuthority returns a copy of the URI without userinfo, host and port.
func (u URI) WithoutAuthority() URI {
	u.user = UserInfo{}
	u.addr = Addr{}
	u.hasAuth = false
	return u
}

func (u URI) withAuthority() URI {
	if !u.hasAuth {
		u.hasAuth = true
		u.path = authorityPath(u.path)
	}
	return u
}

func authorityPath(p string) string {
	if p != "" && p[0] != '/' {
		return "/" + p
	}
	return p
}

// WithPath returns a copy of the URI with the path replaced.
// A relative path of an authority URI gets a leading "/".
func (u URI) WithPath(p string) URI {
	if u.hasAuth {
		p = authorityPath(p)
	}
	u.path = p
	return u
}

// WithQuery returns a copy of the URI with the raw query replaced.
// An empty query removes it.
func (u URI) WithQuery(q string) URI {
	u.query, u.hasQuery = q, q != ""
	return u
}

// WithoutQuery returns a copy of the URI without the query.
func (u URI) WithoutQuery() URI { return u.WithQuery("") }

// WithFragment returns a copy of the URI with the raw fragment replaced.
// An empty fragment removes it.
func (u URI) WithFragment(f string) URI {
	u.frag, u.hasFrag = f, f != ""
	return u
}

// WithoutFragment returns a copy of the URI without the fragment.
func (u URI) WithoutFragment() URI { return u.WithFragment("") }

// Clone returns a deep copy of the URI.
func (u URI) Clone() URI {
	u.addr = u.addr.Clone()
	return u
}

// Equal reports whether u and val are the same URI component by component.
// It accepts URI and *URI. Hosts are compared case-insensitively, anything else byte-wise.
// Use [Engine.Equivalent] to compare normalized forms.
func (u URI) Equal(val any) bool {
	var other URI
	switch v := val.(type) {
	case URI:
		other = v
	case *URI:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return u.scheme == other.scheme &&
		u.hasAuth == other.hasAuth &&
		u.user.Equal(other.user) &&
		u.addr.Equal(other.addr) &&
		u.path == other.path &&
		u.hasQuery == other.hasQuery && u.query == other.query &&
		u.hasFrag == other.hasFrag && u.frag == other.frag
}

// IsValid reports whether the scheme is syntactically valid, the host is valid
// and an authority URI path is empty or absolute.
func (u URI) IsValid() bool {
	if !grammar.IsScheme(u.scheme) {
		return false
	}
	if !u.hasAuth {
		return true
	}
	return u.addr.IsValid() && (u.path == "" || u.path[0] == '/')
}

// IsZero reports whether the URI has no components.
func (u URI) IsZero() bool {
	return u.scheme == "" && !u.hasAuth && u.user.IsZero() && u.addr.IsZero() &&
		u.path == "" && !u.hasQuery && !u.hasFrag
}
