package errorutil_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/gourl/internal/errorutil"
)

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	const sentinel errorutil.Error = "sentinel"
	cause := errors.New("cause")

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{sentinel}},
		{"error", []any{cause}, "sentinel: cause", []error{sentinel, cause}},
		{"already wrapped", []any{errorutil.NewWrapperError(sentinel, "x")}, "sentinel: x", []error{sentinel}},
		{"message", []any{"bad thing"}, "sentinel: bad thing", []error{sentinel}},
		{"format", []any{"bad %q at %d", "x", 3}, `sentinel: bad "x" at 3`, []error{sentinel}},
		{"unsupported arg", []any{42}, "sentinel", []error{sentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(sentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("errorutil.NewWrapperError(sentinel, %v...).Error() = %q, want %q", c.args, got, c.wantMsg)
			}
			for _, want := range c.wantIs {
				if !errors.Is(err, want) {
					t.Errorf("errors.Is(%v, %v) = false, want true", err, want)
				}
			}
		})
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInvalidArgumentError("empty name")
	if !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("errors.Is(%v, errorutil.ErrInvalidArgument) = false, want true", err)
	}
}
