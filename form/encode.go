package form

import (
	"strings"

	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/util"
)

// Pair is a decoded name-value pair.
type Pair struct {
	Name, Value string
}

func (p Pair) String() string { return Encode(p.Name) + "=" + Encode(p.Value) }

func shouldEncode(c byte) bool {
	switch c {
	case '*', '-', '.', '_':
		return false
	}
	return !grammar.IsAlphanum(c)
}

const upperhex = "0123456789ABCDEF"

// Encode applies the application/x-www-form-urlencoded byte serializer to s:
// ASCII alphanumerics and "*-._" are kept, space becomes "+", every other byte is percent-encoded.
func Encode(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r > 0x7f || shouldEncode(byte(r)) }) {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.Grow(3 * len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == ' ':
			sb.WriteByte('+')
		case shouldEncode(c):
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Decode reverses [Encode]: "+" becomes space and percent triplets are decoded.
// Malformed triplets are kept as is.
func Decode(s string) string {
	return grammar.Unescape(strings.ReplaceAll(s, "+", " "))
}

// Parse splits the form-urlencoded string s into decoded pairs.
// Empty pieces between "&" are skipped, a piece without "=" yields an empty value.
func Parse(s string) []Pair {
	var pairs []Pair
	for piece := range strings.SplitSeq(s, "&") {
		if piece == "" {
			continue
		}
		name, value, _ := strings.Cut(piece, "=")
		pairs = append(pairs, Pair{Name: Decode(name), Value: Decode(value)})
	}
	return pairs
}

// Get returns the value of the first pair named name.
func Get(pairs []Pair, name string) (string, bool) {
	for _, p := range pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
