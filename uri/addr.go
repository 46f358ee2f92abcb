package uri

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/util"
)

// Addr is a container for host and optional port of an authority.
type Addr struct {
	host    string
	ip      net.IP
	port    uint16
	hasPort bool
}

// Host returns an [Addr] containing the provided host and no port.
// Brackets around an IPv6 literal are stripped.
func Host(host string) Addr {
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	return Addr{
		host: host,
		ip:   parseIP(host),
	}
}

// HostPort returns an [Addr] containing the provided host and port.
func HostPort(host string, port uint16) Addr {
	addr := Host(host)
	addr.port = port
	addr.hasPort = true
	return addr
}

func parseIP(host string) net.IP {
	ip := net.ParseIP(host)
	if ip == nil {
		return nil
	}
	if !strings.Contains(host, ":") {
		if v := ip.To4(); v != nil {
			ip = v
		}
	}
	return ip
}

// ParseAddr parses a "host[:port]" string into an [Addr].
// An empty port after the colon is treated as absent.
func ParseAddr[T ~string | ~[]byte](s T) (Addr, error) {
	if len(s) == 0 {
		return Addr{}, errtrace.Wrap(ErrEmptyInput)
	}
	return errtrace.Wrap2(parseAddr(string(s)))
}

func parseAddr(s string) (Addr, error) {
	var host, port string
	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return Addr{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "unterminated IP literal %q", s))
		}
		host = s[1:end]
		if ip := net.ParseIP(host); ip == nil || !strings.Contains(host, ":") {
			return Addr{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "invalid IPv6 literal %q", host))
		}
		switch rest := s[end+1:]; {
		case rest == "":
		case rest[0] == ':':
			port = rest[1:]
		default:
			return Addr{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "unexpected %q after IP literal", rest))
		}
	} else {
		host = s
		if i := strings.LastIndexByte(s, ':'); i >= 0 {
			host, port = s[:i], s[i+1:]
		}
		if i := strings.IndexFunc(host, func(r rune) bool { return r > 0x7f || !isHostChar(byte(r)) }); i >= 0 {
			return Addr{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "unexpected char %q in %q", host[i], host))
		}
	}

	if port == "" {
		return Host(host), nil
	}
	if !grammar.IsPort(port) {
		return Addr{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, "%q", port))
	}
	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return Addr{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, "%q out of range", port))
	}
	return HostPort(host, uint16(p)), nil
}

func isHostChar(c byte) bool {
	return grammar.IsUnreserved(c) || grammar.IsSubDelim(c) || c == '%'
}

// Host returns the hostname portion of the address as provided during construction or parsing.
func (addr Addr) Host() string { return addr.host }

// IP returns the parsed IP representation when the host is an IP literal, otherwise nil.
func (addr Addr) IP() net.IP { return addr.ip }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (addr Addr) Port() (uint16, bool) { return addr.port, addr.hasPort }

func (addr Addr) withoutPort() Addr {
	addr.port = 0
	addr.hasPort = false
	return addr
}

func (addr Addr) normalize() Addr {
	addr.host = grammar.LCaseEscaped(grammar.NormalizeEscapes(addr.host, nil))
	return addr
}

// String formats the address as host[:port], adding brackets for IPv6 literals.
// The host is written as stored, IP literals are not reformatted.
func (addr Addr) String() string {
	host := addr.host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if !addr.hasPort {
		return host
	}
	return host + ":" + strconv.Itoa(int(addr.port))
}

// Format implements fmt.Formatter to support custom formatting verbs for Addr values.
func (addr Addr) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, addr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(addr.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, addr.String())
			return
		}

		type hideMethods Addr
		type Addr hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Addr(addr))
		return
	}
}

// Clone returns a deep copy of the address including the underlying IP slice.
func (addr Addr) Clone() Addr {
	addr.ip = slices.Clone(addr.ip)
	return addr
}

// Equal reports whether the address equals the provided value, accepting Addr and *Addr.
// Hosts are compared case-insensitively, IP literals by value.
func (addr Addr) Equal(val any) bool {
	var other Addr
	switch v := val.(type) {
	case Addr:
		other = v
	case *Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	var hostMatch bool
	switch {
	case addr.ip == nil && other.ip == nil:
		hostMatch = util.EqFold(addr.host, other.host)
	case addr.ip != nil && other.ip != nil:
		hostMatch = addr.ip.Equal(other.ip)
	default:
		return false
	}

	return hostMatch && addr.port == other.port && addr.hasPort == other.hasPort
}

// IsValid reports whether the host is an IP literal or a syntactically valid domain name.
// An empty host is valid, as in "file:///etc/hosts".
func (addr Addr) IsValid() bool {
	if addr.host == "" || addr.ip != nil {
		return true
	}
	if strings.ContainsFunc(addr.host, func(r rune) bool { return r > 0x7f || !isHostChar(byte(r)) }) {
		return false
	}
	_, ok := dns.IsDomainName(addr.host)
	return ok
}

// IsZero reports whether the address has zero host, IP and port information.
func (addr Addr) IsZero() bool { return addr.host == "" && addr.ip == nil && !addr.hasPort }

// MarshalText encodes the address into its textual representation suitable for JSON/Text marshalling.
func (addr Addr) MarshalText() (text []byte, err error) {
	return []byte(addr.String()), nil
}

// UnmarshalText parses a textual representation of an address into the receiver.
func (addr *Addr) UnmarshalText(text []byte) error {
	var err error
	*addr, err = ParseAddr(text)
	if errors.Is(err, ErrEmptyInput) {
		return nil
	}
	return errtrace.Wrap(err)
}
