// Package uri implements a small URL engine: parsing text into a structured [URI],
// producing the canonical form, resolving relative references and inferring default ports.
//
// # Parsing
//
// [Parse] accepts absolute URIs only, relative text fails with [ErrRelativeNotAllowed]:
//
//	u, err := uri.Parse("HTTP://User@Example.COM:80/%7euser/./a?q=1#top")
//	if err != nil {
//	    return err
//	}
//	host, _ := u.Host() // "Example.COM"
//	port, _ := u.Port() // 80, only because it is written
//
// Parsing never fills in default ports and keeps components as written,
// except the scheme which is always lowercased.
// A failure is reported as [*ParseError], the kind is checked with [errors.Is]:
//
//	_, err := uri.Parse("http://example.com:99999/")
//	errors.Is(err, uri.ErrInvalidPort) // true
//
// # Normalization
//
// [Normalize] rewrites a URI into its canonical form: lowercase scheme and host,
// no default port of a special scheme, canonical percent-encoding and, for URIs with
// an authority, a path without dot segments:
//
//	uri.Normalize(u).String() // "http://User@example.com/~user/a?q=1#top"
//
// [Equivalent] compares two URIs by their canonical forms.
//
// # Resolution
//
// [Resolve] resolves a reference against a base URI per RFC 3986 Section 5.2.
// It merges paths instead of concatenating strings:
//
//	base, _ := uri.Parse("https://example.com/a/b/")
//	u, _ := uri.Resolve(base, "../c") // https://example.com/a/c
//
// # Engines and scheme registries
//
// Everything scheme-dependent, which schemes are special and what their default ports are,
// comes from the [scheme.Registry] of an [Engine]. The package-level functions use
// [DefaultEngine] built on [scheme.Default]. Engines over different registries model
// two independently versioned copies of the engine:
//
//	whatwg := uri.NewEngine(&uri.EngineOptions{Registry: scheme.WHATWG()})
//	legacy := uri.NewEngine(&uri.EngineOptions{Registry: scheme.Legacy()})
//	u, _ := uri.Parse("gopher://example.com/")
//	whatwg.PortOrDefault(u) // 0, false
//	legacy.PortOrDefault(u) // 70, true
//
// Both answers are correct relative to their registry.
package uri
