package domain

import (
	"time"

	"go.trai.ch/zerr"
)

const (
	// DateLayout is the wire format of every date exchanged with the backend.
	DateLayout = "2006-01-02"

	// DefaultHotelRadiusKm is the hotel search radius used when none is selected.
	DefaultHotelRadiusKm = 5
	// DefaultAirportRadiusKm is the nearby-airport radius used when none is selected.
	DefaultAirportRadiusKm = 200
	// AirportLookupLimit bounds how many airports a single nearby lookup returns.
	AirportLookupLimit = 5
)

// SearchParams bundles everything a search needs once locations are resolved.
type SearchParams struct {
	Mode        Mode
	Destination *Coordinates
	Origin      *Coordinates
	CheckIn     string
	CheckOut    string
	Adults      int
	Rooms       int
	RadiusKm    int
	// Limit caps the number of hotel offers requested. Zero leaves it to the backend.
	Limit int
}

// ClampMin returns n, or lower when n is below it.
func ClampMin(n, lower int) int {
	if n < lower {
		return lower
	}
	return n
}

// Normalize applies defaults and validates dates. The check-in date defaults to the day
// after now.
func (p SearchParams) Normalize(now time.Time) (SearchParams, error) {
	p.Adults = ClampMin(p.Adults, 1)
	p.Rooms = ClampMin(p.Rooms, 1)
	if p.RadiusKm <= 0 {
		p.RadiusKm = p.Mode.DefaultRadiusKm()
	}
	if p.Limit < 0 {
		p.Limit = 0
	}

	if p.CheckIn == "" {
		p.CheckIn = now.AddDate(0, 0, 1).Format(DateLayout)
	}
	checkIn, err := time.Parse(DateLayout, p.CheckIn)
	if err != nil {
		return p, zerr.With(WrapKind(ErrInvalidDate, err), "check_in", p.CheckIn)
	}

	if p.CheckOut != "" {
		checkOut, err := time.Parse(DateLayout, p.CheckOut)
		if err != nil {
			return p, zerr.With(WrapKind(ErrInvalidDate, err), "check_out", p.CheckOut)
		}
		if !checkOut.After(checkIn) {
			return p, zerr.With(zerr.With(WrapKind(ErrCheckOutBeforeCheckIn, nil),
				"check_in", p.CheckIn), "check_out", p.CheckOut)
		}
	}

	return p, nil
}

// Fingerprint identifies the search for caching and coalescing. It extends the base
// fingerprint with the radius and hotel limit, which change what the backend returns.
// Destination must be resolved.
func (p SearchParams) Fingerprint() Fingerprint {
	fp := BuildFingerprint(p.Mode, *p.Destination, p.Origin, p.CheckIn, p.CheckOut, p.Adults, p.Rooms)
	return fp.With("radius", p.RadiusKm).With("limit", p.Limit)
}

// MinCheckOut returns the earliest valid check-out date for checkIn.
func MinCheckOut(checkIn string) (string, error) {
	t, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return "", zerr.With(WrapKind(ErrInvalidDate, err), "check_in", checkIn)
	}
	return t.AddDate(0, 0, 1).Format(DateLayout), nil
}
