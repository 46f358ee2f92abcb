package scheme

import "github.com/ghettovoice/gourl/internal/util"

var whatwgInfos = []Info{
	{Name: "ftp", Port: 21, Special: true},
	{Name: "file", Special: true},
	{Name: "http", Port: 80, Special: true},
	{Name: "https", Port: 443, Special: true},
	{Name: "ws", Port: 80, Special: true},
	{Name: "wss", Port: 443, Special: true},
	{Name: "gopher", Port: 70},
}

var (
	whatwg = util.Must2(NewRegistry("whatwg", whatwgInfos...))
	legacy = util.Must2(NewRegistry("legacy", append(whatwgInfos[:len(whatwgInfos)-1:len(whatwgInfos)-1],
		Info{Name: "gopher", Port: 70, Special: true},
	)...))
)

// WHATWG returns the registry of the WHATWG URL Standard special schemes.
// The "gopher" scheme is known with its historical port 70, but it is not special,
// so no default port is inferred for it.
func WHATWG() *Registry { return whatwg }

// Legacy returns the older registry where "gopher" is special with default port 70.
// Other records are the same as in [WHATWG].
func Legacy() *Registry { return legacy }

// Default returns the registry used when none is configured, which is [WHATWG].
func Default() *Registry { return whatwg }
