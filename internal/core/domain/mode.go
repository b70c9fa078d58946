package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Mode selects which backend calls a search issues and how its payload is shaped.
type Mode string

const (
	// ModeFlights resolves nearby airports on both sides and searches flights between them.
	ModeFlights Mode = "flights"
	// ModeHotels searches hotel offers around the destination.
	ModeHotels Mode = "hotels"
	// ModeTrip asks the backend for hotels and flights in one combined call.
	ModeTrip Mode = "trip"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeHotels, ModeFlights, ModeTrip}

// ParseMode converts user input into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeFlights, ModeHotels, ModeTrip:
		return m, nil
	default:
		return "", zerr.With(WrapKind(ErrInvalidMode, nil), "mode", s)
	}
}

// NeedsOrigin reports whether the mode cannot run without origin coordinates.
func (m Mode) NeedsOrigin() bool {
	return m == ModeFlights || m == ModeTrip
}

// DefaultRadiusKm returns the search radius used when the caller did not pick one.
func (m Mode) DefaultRadiusKm() int {
	if m == ModeHotels {
		return DefaultHotelRadiusKm
	}
	return DefaultAirportRadiusKm
}

// RadiusOptionsKm returns the radius choices offered for the mode.
func (m Mode) RadiusOptionsKm() []int {
	if m == ModeHotels {
		return []int{1, 2, 5, 10}
	}
	return []int{50, 100, 200}
}

func (m Mode) String() string {
	return string(m)
}
