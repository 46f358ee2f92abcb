package grammar

import (
	"bytes"

	"github.com/ghettovoice/gourl/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isTriplet(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// Existing triplets are kept as is. If shouldEscape is nil, everything except unreserved chars is escaped.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case isTriplet(s, i):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			writeTriplet(&b, s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// NormalizeEscapes rewrites percent-encoding of s into the canonical form:
// triplets of unreserved chars are decoded, the hex of other triplets is uppercased
// and raw bytes matched by shouldEscape are encoded.
// A '%' which does not start a triplet is always encoded.
// If shouldEscape is nil, [IsUnsafe] is used.
func NormalizeEscapes[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = IsUnsafe
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case isTriplet(s, i):
			if c := unhex(s[i+1])<<4 | unhex(s[i+2]); IsUnreserved(c) {
				b.WriteByte(c)
			} else {
				writeTriplet(&b, c)
			}
			i += 2
		case s[i] == '%' || shouldEscape(s[i]):
			writeTriplet(&b, s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// LCaseEscaped lowercases ASCII letters of s, leaving the hex digits of percent triplets untouched.
func LCaseEscaped[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	b := []byte(string(s))
	for i := 0; i < len(b); i++ {
		if isTriplet(b, i) {
			i += 2
			continue
		}
		if 'A' <= b[i] && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return T(b)
}

const upperhex = "0123456789ABCDEF"

func writeTriplet(b *bytes.Buffer, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&15])
}

func isTriplet[T constraints.Byteseq](s T, i int) bool {
	return s[i] == '%' && i+2 < len(s) && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2])
}

// IsHexDigit checks HEXDIG rule.
func IsHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsAlphanum checks ALPHA / DIGIT rules.
func IsAlphanum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsUnreserved checks unreserved rule of RFC 3986.
func IsUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanum(c)
}

// IsSubDelim checks sub-delims rule of RFC 3986.
func IsSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// IsUnsafe reports whether c can never appear raw in a URI component:
// controls, space, non-ASCII bytes and the delimiters excluded by RFC 3986 Appendix C.
func IsUnsafe(c byte) bool {
	if c <= 0x20 || c >= 0x7f {
		return true
	}
	switch c {
	case '"', '<', '>', '\\', '^', '`', '{', '|', '}':
		return true
	}
	return false
}
