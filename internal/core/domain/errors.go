package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidMode is returned when a search mode is not one of flights, hotels or trip.
	ErrInvalidMode = zerr.New("invalid search mode, expected 'flights', 'hotels' or 'trip'")

	// ErrInvalidCoordinates is returned when a latitude or longitude is out of range.
	ErrInvalidCoordinates = zerr.New("invalid coordinates")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD format.
	ErrInvalidDate = zerr.New("invalid date, expected YYYY-MM-DD")

	// ErrCheckOutBeforeCheckIn is returned when the check-out date is not after the check-in date.
	ErrCheckOutBeforeCheckIn = zerr.New("check-out date must be after check-in date")

	// ErrOriginUnresolved is returned when a search needs origin coordinates that are not known.
	ErrOriginUnresolved = zerr.New("origin unresolved")

	// ErrDestinationUnresolved is returned when a search needs destination coordinates that are not known.
	ErrDestinationUnresolved = zerr.New("destination unresolved")

	// ErrLocationNotFound is returned when geocoding yields no result.
	ErrLocationNotFound = zerr.New("location not found")

	// ErrGeocodeFailed is returned when the geocoding provider cannot be reached or fails.
	ErrGeocodeFailed = zerr.New("geocoding failed")

	// ErrNoAirportsInRadius is returned when a nearby-airport lookup yields no airport.
	ErrNoAirportsInRadius = zerr.New("no airports found within selected radius")

	// ErrAirportLookupFailed is returned when a nearby-airport lookup fails.
	ErrAirportLookupFailed = zerr.New("nearby airport lookup failed")

	// ErrFlightSearchFailed is returned when the flight search call fails.
	ErrFlightSearchFailed = zerr.New("flight search failed")

	// ErrHotelSearchFailed is returned when the nearby hotel search call fails.
	ErrHotelSearchFailed = zerr.New("hotel search failed")

	// ErrTripInfoFailed is returned when the combined trip search call fails.
	ErrTripInfoFailed = zerr.New("trip search failed")

	// ErrLocationSearchFailed is returned when the location keyword search fails.
	ErrLocationSearchFailed = zerr.New("location search failed")

	// ErrMapsKeyFailed is returned when the maps API key cannot be retrieved.
	ErrMapsKeyFailed = zerr.New("failed to retrieve maps key")

	// ErrBackendUnreachable is returned when a backend request cannot be sent or answered.
	ErrBackendUnreachable = zerr.New("backend unreachable")

	// ErrBackendReported is returned when the backend answers with a non-2xx status.
	ErrBackendReported = zerr.New("backend reported an error")

	// ErrInvalidRequest is returned when the backend rejects request parameters (400).
	ErrInvalidRequest = zerr.New("invalid request parameters")

	// ErrNotFound is returned when the backend answers 404.
	ErrNotFound = zerr.New("not found")

	// ErrUpstream is returned when the backend's upstream provider failed (502).
	ErrUpstream = zerr.New("upstream provider error")

	// ErrTimeout is returned when the backend's upstream provider timed out (504).
	ErrTimeout = zerr.New("upstream provider timeout")

	// ErrDecodeFailed is returned when a backend response body cannot be decoded.
	ErrDecodeFailed = zerr.New("failed to decode response")

	// ErrSuperseded is returned by a suggestion request that was replaced by a newer one.
	ErrSuperseded = zerr.New("request superseded")

	// ErrInvalidPolyline is returned when an encoded polyline is truncated.
	ErrInvalidPolyline = zerr.New("invalid encoded polyline")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrBatchReadFailed is returned when a batch file cannot be read.
	ErrBatchReadFailed = zerr.New("failed to read batch file")

	// ErrSearchFailed is returned by the CLI when at least one search ended in an error.
	ErrSearchFailed = zerr.New("search failed")
)

// WrapKind attaches the sentinel kind to cause so that errors.Is matches both.
// zerr.With copies its receiver, so sentinels must travel in the cause chain.
func WrapKind(kind, cause error) error {
	if cause == nil {
		return zerr.Wrap(kind, "")
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

// ReportedMessage returns the human-readable message a backend attached to err, if any.
func ReportedMessage(err error) (string, bool) {
	switch e := err.(type) {
	case nil:
		return "", false
	case *zerr.Error:
		if msg, ok := e.Metadata()["message"].(string); ok && msg != "" {
			return msg, true
		}
		return ReportedMessage(e.Unwrap())
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if msg, ok := ReportedMessage(inner); ok {
				return msg, true
			}
		}
		return "", false
	case interface{ Unwrap() error }:
		return ReportedMessage(e.Unwrap())
	default:
		return "", false
	}
}
