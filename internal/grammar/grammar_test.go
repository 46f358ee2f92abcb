package grammar_test

import (
	"testing"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
)

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"http", true},
		{"HTTPS", true},
		{"svn+ssh", true},
		{"x-my.app", true},
		{"h2", true},
		{"2h", false},
		{"+http", false},
		{"ht tp", false},
		{"ht_tp", false},
		{"http:", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsScheme(c.in); got != c.want {
				t.Errorf("grammar.IsScheme(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}

	if !grammar.IsScheme([]byte("ftp")) {
		t.Errorf("grammar.IsScheme([]byte(%q)) = false, want true", "ftp")
	}
}

func TestIsPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", true},
		{"80", true},
		{"065535", true},
		{"99999999", true},
		{"8a", false},
		{"-1", false},
		{" 80", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsPort(c.in); got != c.want {
				t.Errorf("grammar.IsPort(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestError_Grammar(t *testing.T) {
	t.Parallel()

	if !errorutil.IsGrammarErr(grammar.ErrMalformedInput) {
		t.Errorf("errorutil.IsGrammarErr(grammar.ErrMalformedInput) = false, want true")
	}
	if errorutil.IsGrammarErr(errorutil.Error("other")) {
		t.Errorf("errorutil.IsGrammarErr(errorutil.Error(%q)) = true, want false", "other")
	}
}
