package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	fingerprintSep = "|"
	noOrigin       = "no-origin"
	noCheckOut     = "no-checkout"
	// coordinatePrecision is the number of decimals kept per coordinate (about 1 m).
	coordinatePrecision = 5
)

// Fingerprint is the deterministic key of a search. Identical searches always map to the
// same fingerprint and distinct searches never share one.
type Fingerprint string

// BuildFingerprint derives the key for a search. An absent origin and an empty check-out
// are encoded as placeholders that cannot be mistaken for real values. Adults and rooms
// are clamped to at least one.
func BuildFingerprint(
	mode Mode,
	dest Coordinates,
	origin *Coordinates,
	checkIn, checkOut string,
	adults, rooms int,
) Fingerprint {
	parts := make([]string, 0, 9)
	parts = append(parts, string(mode), formatCoord(dest.Lat), formatCoord(dest.Lng))

	if origin != nil {
		parts = append(parts, formatCoord(origin.Lat), formatCoord(origin.Lng))
	} else {
		parts = append(parts, noOrigin, noOrigin)
	}

	if checkOut == "" {
		checkOut = noCheckOut
	}
	parts = append(parts,
		checkIn,
		checkOut,
		strconv.Itoa(ClampMin(adults, 1)),
		strconv.Itoa(ClampMin(rooms, 1)),
	)

	return Fingerprint(strings.Join(parts, fingerprintSep))
}

// With returns the fingerprint extended by a named integer qualifier.
func (f Fingerprint) With(name string, value int) Fingerprint {
	return f + fingerprintSep + Fingerprint(name+"="+strconv.Itoa(value))
}

// Digest returns a short stable identifier for logs and traces.
func (f Fingerprint) Digest() string {
	return strconv.FormatUint(xxhash.Sum64String(string(f)), 16)
}

func (f Fingerprint) String() string {
	return string(f)
}

func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', coordinatePrecision, 64)
	// -0.00000 and 0.00000 are the same place.
	if strings.Trim(s, "-0.") == "" {
		return strconv.FormatFloat(0, 'f', coordinatePrecision, 64)
	}
	return s
}
