package domain

import (
	"math"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

const earthRadiusKm = 6371.0

// Coordinates is a resolved WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Validate checks that both components are within range.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return zerr.With(zerr.With(WrapKind(ErrInvalidCoordinates, nil), "lat", c.Lat), "lng", c.Lng)
	}
	return nil
}

func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// ParseCoordinates parses a "lat,lng" pair. ok is false when s is not a coordinate pair,
// so callers can fall back to geocoding.
func ParseCoordinates(s string) (c Coordinates, ok bool, err error) {
	latStr, lngStr, found := strings.Cut(s, ",")
	if !found {
		return Coordinates{}, false, nil
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if errLat != nil || errLng != nil {
		return Coordinates{}, false, nil
	}
	c = Coordinates{Lat: lat, Lng: lng}
	if err := c.Validate(); err != nil {
		return Coordinates{}, true, err
	}
	return c, true, nil
}

// HaversineKm returns the great-circle distance between a and b in kilometres.
func HaversineKm(a, b Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// PathKm returns the length of the path through points.
func PathKm(points []Coordinates) float64 {
	var km float64
	for i := 1; i < len(points); i++ {
		km += HaversineKm(points[i-1], points[i])
	}
	return km
}
