// Package version owns the protocol version catalog.
//
// Ownership boundary:
// - ordered catalog of known protocol releases
// - release string and wire number lookup
// - ordering predicates used by version-gated codecs
//
// The catalog is static. Entries are never added at runtime.
package version

import (
	"strconv"
	"strings"
)

// Version identifies one catalog entry. Ordering follows release chronology.
// The zero value is Unknown and never names a supported protocol.
type Version uint8

// Unknown is the zero Version.
const Unknown Version = 0

type entry struct {
	protocol int32
	releases []string
}

var byRelease = func() map[string]Version {
	m := make(map[string]Version)
	for i := 1; i < len(catalog); i++ {
		for _, name := range catalog[i].releases {
			m[name] = Version(i)
		}
	}
	return m
}()

var byProtocol = func() map[int32]Version {
	m := make(map[int32]Version, len(catalog))
	for i := 1; i < len(catalog); i++ {
		m[catalog[i].protocol] = Version(i)
	}
	return m
}()

// Lookup resolves a human-readable release string such as "1.20.4".
func Lookup(release string) (Version, bool) {
	v, ok := byRelease[strings.TrimSpace(release)]
	return v, ok
}

// FromProtocol resolves a numeric wire version as sent in a handshake.
func FromProtocol(protocol int32) (Version, bool) {
	v, ok := byProtocol[protocol]
	return v, ok
}

// All returns every known version, oldest first.
func All() []Version {
	out := make([]Version, 0, len(catalog)-1)
	for i := 1; i < len(catalog); i++ {
		out = append(out, Version(i))
	}
	return out
}

// Oldest returns the first catalog entry.
func Oldest() Version {
	return Version(1)
}

// Latest returns the newest catalog entry.
func Latest() Version {
	return Version(len(catalog) - 1)
}

// Valid reports whether v names a catalog entry.
func (v Version) Valid() bool {
	return v != Unknown && int(v) < len(catalog)
}

// Protocol returns the numeric wire version, or -1 when v is not valid.
func (v Version) Protocol() int32 {
	if !v.Valid() {
		return -1
	}
	return catalog[v].protocol
}

// Releases returns the release strings sharing this wire behavior.
func (v Version) Releases() []string {
	if !v.Valid() {
		return nil
	}
	out := make([]string, len(catalog[v].releases))
	copy(out, catalog[v].releases)
	return out
}

// String returns the newest release string of the entry.
func (v Version) String() string {
	if !v.Valid() {
		return "unknown(" + strconv.Itoa(int(v)) + ")"
	}
	r := catalog[v].releases
	return r[len(r)-1]
}

// ConstName returns the Go identifier of the exported constant for v.
func (v Version) ConstName() string {
	if !v.Valid() {
		return "Unknown"
	}
	return "V" + strings.ReplaceAll(v.String(), ".", "_")
}

// Compare returns -1, 0 or +1 by catalog order.
func (v Version) Compare(o Version) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	default:
		return 0
	}
}

func (v Version) AtLeast(o Version) bool { return v >= o }
func (v Version) AtMost(o Version) bool  { return v <= o }
func (v Version) Before(o Version) bool  { return v < o }
func (v Version) After(o Version) bool   { return v > o }

// Between reports lo <= v <= hi. An Unknown bound is open.
func (v Version) Between(lo, hi Version) bool {
	if lo != Unknown && v < lo {
		return false
	}
	if hi != Unknown && v > hi {
		return false
	}
	return true
}
