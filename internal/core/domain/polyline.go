package domain

import "go.trai.ch/zerr"

// DecodePolyline decodes a Google encoded polyline into its points.
func DecodePolyline(encoded string) ([]Coordinates, error) {
	points := make([]Coordinates, 0, len(encoded)/4)
	var lat, lng int
	for i := 0; i < len(encoded); {
		dLat, next, err := decodeValue(encoded, i)
		if err != nil {
			return nil, err
		}
		dLng, next, err := decodeValue(encoded, next)
		if err != nil {
			return nil, err
		}
		i = next
		lat += dLat
		lng += dLng
		points = append(points, Coordinates{Lat: float64(lat) / 1e5, Lng: float64(lng) / 1e5})
	}
	return points, nil
}

func decodeValue(encoded string, i int) (value, next int, err error) {
	var result, shift int
	for {
		if i >= len(encoded) {
			return 0, 0, zerr.With(WrapKind(ErrInvalidPolyline, nil), "offset", i)
		}
		b := int(encoded[i]) - 63
		if b < 0 || b > 63 {
			return 0, 0, zerr.With(WrapKind(ErrInvalidPolyline, nil), "offset", i)
		}
		i++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}
	return result >> 1, i, nil
}
