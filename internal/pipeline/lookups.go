package pipeline

import "strings"

// Lookups is a set of optional enrichment lookups.
type Lookups uint8

const (
	LookupQR Lookups = 1 << iota
	LookupGeolocation
	LookupWhois
	LookupNetwork
)

const LookupNone Lookups = 0

// Has returns true if all the lookups given are in the set.
func (l Lookups) Has(lookups Lookups) bool {
	return l&lookups == lookups
}

// Names returns the name of each lookup in the set,
// in the order they run.
func (l Lookups) Names() (names []string) {
	names = make([]string, 0, 4) //nolint:gomnd
	for _, lookup := range []struct {
		value Lookups
		name  string
	}{
		{value: LookupQR, name: "qr code"},
		{value: LookupGeolocation, name: "geolocation"},
		{value: LookupWhois, name: "whois"},
		{value: LookupNetwork, name: "network"},
	} {
		if l.Has(lookup.value) {
			names = append(names, lookup.name)
		}
	}
	return names
}

func (l Lookups) String() string {
	names := l.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
