// Package grammar implements the URI grammar pieces shared by the gourl packages:
// ABNF rules for schemes and ports, character classes of RFC 3986 and percent-encoding helpers.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/gourl/internal/constraints"
)

func init() {
	abnf.EnableNodeCache(1024)
}

// Error is a grammar error.
type Error string

func (e Error) Error() string { return string(e) }

// Grammar marks the error as a grammar error, see [errorutil.IsGrammarErr].
func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// IsScheme reports whether s matches the scheme rule of RFC 3986:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func IsScheme[T constraints.Byteseq](s T) bool {
	return matchAll(schemeRule, s)
}

// IsPort reports whether s matches the port rule restricted to a non-empty digit sequence:
//
//	port = 1*DIGIT
func IsPort[T constraints.Byteseq](s T) bool {
	return matchAll(portRule, s)
}

func matchAll[T constraints.Byteseq](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	n := ns.Best()
	return n != nil && n.Len() == len(s)
}
