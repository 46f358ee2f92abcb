package scheme

import (
	"fmt"
	"slices"
	"strconv"
)

// Divergence describes a scheme which is treated differently by two registries.
type Divergence struct {
	Scheme string
	// Left and Right are the records found in the compared registries,
	// zero when the scheme is unknown to that registry.
	Left, Right Info
	// LeftVersion and RightVersion are the labels of the compared registries.
	LeftVersion, RightVersion string
}

func (d Divergence) String() string {
	return fmt.Sprintf("%s: %s=%s %s=%s",
		d.Scheme,
		d.LeftVersion, inferredPort(d.Left),
		d.RightVersion, inferredPort(d.Right),
	)
}

func inferredPort(i Info) string {
	if !i.Special {
		return "none"
	}
	if p, ok := i.DefaultPort(); ok {
		return strconv.Itoa(int(p))
	}
	return "special"
}

// Diff returns schemes on which a and b disagree about speciality or the inferred default port,
// ordered by scheme name. Schemes known to only one registry diverge only if they are special there.
func Diff(a, b *Registry) []Divergence {
	names := make([]string, 0, a.Len()+b.Len())
	for info := range a.All() {
		names = append(names, info.Name)
	}
	for info := range b.All() {
		names = append(names, info.Name)
	}
	slices.Sort(names)
	names = slices.Compact(names)

	var divs []Divergence
	for _, name := range names {
		li, _ := a.Lookup(name)
		ri, _ := b.Lookup(name)
		lp, lok := a.DefaultPort(name)
		rp, rok := b.DefaultPort(name)
		if li.Special == ri.Special && lp == rp && lok == rok {
			continue
		}
		divs = append(divs, Divergence{
			Scheme:       name,
			Left:         li,
			Right:        ri,
			LeftVersion:  a.Version(),
			RightVersion: b.Version(),
		})
	}
	return divs
}
