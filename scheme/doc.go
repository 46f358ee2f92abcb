// Package scheme holds the scheme tables consulted by the gourl engine.
//
// A [Registry] maps scheme names to [Info] records: the historically associated
// port of the scheme and whether the scheme is "special". Only special schemes take
// part in default port inference and the special normalization rules of the engine.
// A non-special scheme never yields a default port, even if [Info.Port] is set.
//
// A registry is a snapshot: it is built once by [NewRegistry], carries a version label
// and is never mutated afterwards, so it is safe for concurrent reads without locking.
// Two engines built against different snapshots may legitimately disagree on the same
// input. The built-in snapshots are:
//
//   - [WHATWG]: the special schemes of the WHATWG URL Standard
//     (ftp, file, http, https, ws, wss); gopher is known but not special;
//   - [Legacy]: the older table where gopher is special with default port 70.
//
// [Diff] lists the schemes on which two snapshots disagree:
//
//	for _, d := range scheme.Diff(scheme.WHATWG(), scheme.Legacy()) {
//	    fmt.Println(d) // gopher: whatwg=none legacy=70
//	}
package scheme
