package grammar_test

import (
	"bytes"
	"testing"

	"github.com/ghettovoice/gourl/internal/grammar"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		cb   func(byte) bool
		want string
	}{
		{"empty", "", nil, ""},
		{"no escape", "abc-%2Bqwe~", nil, "abc-%2Bqwe~"},
		{"escape all", "abc++qwe!", nil, "abc%2B%2Bqwe%21"},
		{"escape some", "abc+?qwe!", func(c byte) bool { return c == '?' }, "abc+%3Fqwe!"},
		{"stray percent", "100%", nil, "100%25"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Escape(c.str, c.cb), c.want; got != want {
				t.Errorf("grammar.Escape(%q, %p) = %q, want %q", c.str, c.cb, got, want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no unescape", "abc%ax%", "abc%ax%"},
		{"truncated triplet", "abc%4", "abc%4"},
		{"unescape all", "abc%E4%b8%96", "abc世"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unescape(c.str), c.want; got != want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestNormalizeEscapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		cb   func(byte) bool
		want string
	}{
		{"empty", "", nil, ""},
		{"plain", "/a/b", nil, "/a/b"},
		{"decode unreserved", "/%7Euser/%41%2d%5F", nil, "/~user/A-_"},
		{"uppercase reserved", "/a%2fb%3a", nil, "/a%2Fb%3A"},
		{"encode unsafe", "/a b\"<>", nil, "/a%20b%22%3C%3E"},
		{"encode non-ascii", "/世", nil, "/%E4%B8%96"},
		{"stray percent", "/50%/%zz", nil, "/50%25/%25zz"},
		{"extra escape", "/a?b#c", func(c byte) bool { return c == '?' || c == '#' || grammar.IsUnsafe(c) }, "/a%3Fb%23c"},
		{"keeps reserved", "a=1&b=2;c+d", nil, "a=1&b=2;c+d"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.NormalizeEscapes(c.str, c.cb)
			if got != c.want {
				t.Errorf("grammar.NormalizeEscapes(%q, %p) = %q, want %q", c.str, c.cb, got, c.want)
			}
			if again := grammar.NormalizeEscapes(got, c.cb); again != got {
				t.Errorf("grammar.NormalizeEscapes(%q, %p) = %q, want it unchanged", got, c.cb, again)
			}
		})
	}
}

func TestLCaseEscaped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str, want string
	}{
		{"", ""},
		{"EXAMPLE.com", "example.com"},
		{"Ex%C3%A9mple", "ex%C3%A9mple"},
		{"A%2", "a%2"},
	}

	for _, c := range cases {
		if got := grammar.LCaseEscaped(c.str); got != c.want {
			t.Errorf("grammar.LCaseEscaped(%q) = %q, want %q", c.str, got, c.want)
		}
	}

	in := []byte("ABC")
	if got := grammar.LCaseEscaped(in); string(got) != "abc" || string(in) != "ABC" {
		t.Errorf("grammar.LCaseEscaped([]byte(%q)) = %q, input = %q, want \"abc\" and untouched input", "ABC", got, in)
	}
}

func BenchmarkNormalizeEscapes(b *testing.B) {
	cases := []struct {
		name    string
		in, out any
	}{
		{"string", "/%7euser/a b", "/~user/a%20b"},
		{"bytes", []byte("/%7euser/a b"), []byte("/~user/a%20b")},
	}

	b.ResetTimer()
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				switch in := c.in.(type) {
				case string:
					want, _ := c.out.(string)
					if got := grammar.NormalizeEscapes(in, nil); got != want {
						b.Errorf("grammar.NormalizeEscapes(%q, nil) = %q, want %q", in, got, want)
					}
				case []byte:
					want, _ := c.out.([]byte)
					if got := grammar.NormalizeEscapes(in, nil); !bytes.Equal(got, want) {
						b.Errorf("grammar.NormalizeEscapes(%q, nil) = %q, want %q", in, got, want)
					}
				}
			}
		})
	}
}
