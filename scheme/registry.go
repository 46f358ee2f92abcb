package scheme

//go:generate go tool errtrace -w .

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/util"
)

// Info describes a scheme.
type Info struct {
	// Name is the lowercase scheme name.
	Name string
	// Port is the port historically associated with the scheme, 0 if none.
	Port uint16
	// Special marks schemes which take part in default port inference and
	// special normalization rules.
	Special bool
}

// DefaultPort returns the port associated with the scheme and whether it is set.
// The port is reported regardless of [Info.Special], see [Registry.DefaultPort]
// for the value the engine actually infers.
func (i Info) DefaultPort() (uint16, bool) { return i.Port, i.Port != 0 }

func (i Info) String() string {
	s := i.Name
	if p, ok := i.DefaultPort(); ok {
		s += ":" + strconv.Itoa(int(p))
	}
	if i.Special {
		s += " (special)"
	}
	return s
}

func (i Info) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", i.Name),
		slog.Int("port", int(i.Port)),
		slog.Bool("special", i.Special),
	)
}

// Registry is an immutable snapshot of scheme records.
type Registry struct {
	version string
	infos   map[string]Info
	names   []string
}

// NewRegistry builds a registry snapshot labeled with version from the given records.
// Scheme names are validated against the scheme grammar and lowercased.
// Records with the same name are rejected with [ErrDuplicateScheme].
func NewRegistry(version string, infos ...Info) (*Registry, error) {
	if util.TrimSP(version) == "" {
		return nil, errtrace.Wrap(NewInvalidArgumentError("empty registry version"))
	}

	r := &Registry{
		version: version,
		infos:   make(map[string]Info, len(infos)),
		names:   make([]string, 0, len(infos)),
	}
	for _, info := range infos {
		if !grammar.IsScheme(info.Name) {
			return nil, errtrace.Wrap(NewInvalidArgumentError("invalid scheme name %q", info.Name))
		}
		info.Name = util.LCase(info.Name)
		if _, ok := r.infos[info.Name]; ok {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrDuplicateScheme, "scheme %q", info.Name))
		}
		r.infos[info.Name] = info
		r.names = append(r.names, info.Name)
	}
	slices.Sort(r.names)
	return r, nil
}

// Version returns the snapshot label.
func (r *Registry) Version() string {
	if r == nil {
		return ""
	}
	return r.version
}

// Len returns the number of known schemes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Lookup returns the record of the scheme, the name is matched case-insensitively.
func (r *Registry) Lookup(name string) (Info, bool) {
	if r == nil {
		return Info{}, false
	}
	info, ok := r.infos[util.LCase(name)]
	return info, ok
}

// IsSpecial reports whether the scheme is known and marked special.
func (r *Registry) IsSpecial(name string) bool {
	info, ok := r.Lookup(name)
	return ok && info.Special
}

// DefaultPort returns the default port of a special scheme.
// Unknown and non-special schemes have no default port.
func (r *Registry) DefaultPort(name string) (uint16, bool) {
	info, ok := r.Lookup(name)
	if !ok || !info.Special {
		return 0, false
	}
	return info.DefaultPort()
}

// All iterates over the records ordered by scheme name.
func (r *Registry) All() iter.Seq[Info] {
	return func(yield func(Info) bool) {
		if r == nil {
			return
		}
		for _, name := range r.names {
			if !yield(r.infos[name]) {
				return
			}
		}
	}
}

func (r *Registry) String() string {
	if r == nil {
		return "scheme.Registry(<nil>)"
	}
	return fmt.Sprintf("scheme.Registry(%s, %d schemes)", r.version, len(r.names))
}

func (r *Registry) LogValue() slog.Value {
	if r == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("version", r.version),
		slog.Int("schemes", len(r.names)),
	)
}
