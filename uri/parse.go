package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/util"
)

// Parse parses an absolute URI from the given input s (string or []byte) with the [DefaultEngine].
// See [Engine.Parse].
func Parse[T ~string | ~[]byte](s T) (URI, error) {
	return errtrace.Wrap2(DefaultEngine().Parse(string(s)))
}

func parse(s string) (URI, error) {
	s = clean(s)
	if s == "" {
		return URI{}, errtrace.Wrap(ErrEmptyInput)
	}

	i := schemeEnd(s)
	if i < 0 {
		return URI{}, errtrace.Wrap(ErrRelativeNotAllowed)
	}
	if !grammar.IsScheme(s[:i]) {
		return URI{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "%q", s[:i]))
	}

	u, err := parseReference(s[i+1:])
	if err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	u.scheme = util.LCase(s[:i])
	return u, nil
}

// clean strips leading and trailing C0 controls and spaces and removes
// ASCII tab and newline chars anywhere in s.
func clean(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool { return r <= 0x20 })
	if strings.ContainsAny(s, "\t\r\n") {
		s = strings.Map(func(r rune) rune {
			switch r {
			case '\t', '\r', '\n':
				return -1
			}
			return r
		}, s)
	}
	return s
}

// schemeEnd returns the index of the colon ending the scheme or -1 if s has no scheme.
// Only a colon found before any of "/?#" is considered.
func schemeEnd(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ':':
			return i
		case '/', '?', '#':
			return -1
		}
	}
	return -1
}

// parseReference parses the hierarchical part, query and fragment of s.
// The returned URI has no scheme.
func parseReference(s string) (URI, error) {
	var u URI
	if i := strings.IndexByte(s, '#'); i >= 0 {
		u = u.WithFragment(s[i+1:])
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		u = u.WithQuery(s[i+1:])
		s = s[:i]
	}
	if rest, ok := strings.CutPrefix(s, "//"); ok {
		auth := rest
		s = ""
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			auth, s = rest[:i], rest[i:]
		}
		if i := strings.LastIndexByte(auth, '@'); i >= 0 {
			u.user = parseUserInfo(auth[:i])
			auth = auth[i+1:]
		}
		if auth != "" {
			addr, err := parseAddr(auth)
			if err != nil {
				return URI{}, errtrace.Wrap(err)
			}
			u.addr = addr
		}
		u.hasAuth = true
	}
	u.path = s
	return u, nil
}
