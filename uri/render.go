package uri

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/ioutil"
	"github.com/ghettovoice/gourl/internal/util"
)

// RenderTo writes the URI text to w.
// Components are written as stored, see [Engine.Normalize] for the canonical form.
func (u URI) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.scheme != "" {
		cw.WriteString(u.scheme)
		cw.WriteByte(':')
	}
	if u.hasAuth {
		cw.WriteString("//")
		if !u.user.IsZero() {
			cw.WriteString(u.user.String())
			cw.WriteByte('@')
		}
		cw.WriteString(u.addr.String())
	}
	cw.WriteString(u.path)
	if u.hasQuery {
		cw.WriteByte('?')
		cw.WriteString(u.query)
	}
	if u.hasFrag {
		cw.WriteByte('#')
		cw.WriteString(u.frag)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the URI text.
func (u URI) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
//
//   - %s and %v print the URI text;
//   - %q prints the quoted URI text;
//   - %+v and %#v print the components.
func (u URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		u.RenderTo(f) //nolint:errcheck
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			u.RenderTo(f) //nolint:errcheck
			return
		}

		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URI(u))
		return
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Empty text resets the receiver to the zero URI.
func (u *URI) UnmarshalText(text []byte) error {
	v, err := Parse(text)
	if err != nil {
		if errors.Is(err, ErrEmptyInput) {
			*u = URI{}
			return nil
		}
		return errtrace.Wrap(err)
	}
	*u = v
	return nil
}

// LogValue implements slog.LogValuer.
func (u URI) LogValue() slog.Value {
	if u.IsZero() {
		return slog.Value{}
	}
	return slog.StringValue(u.String())
}
