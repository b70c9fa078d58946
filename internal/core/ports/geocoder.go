package ports

import (
	"context"

	"go.trai.ch/compass/internal/core/domain"
)

// Geocoder resolves free-form place names into coordinates.
//
//go:generate mockgen -source=geocoder.go -destination=mocks/mock_geocoder.go -package=mocks
type Geocoder interface {
	// ForwardGeocode returns the best match for query.
	ForwardGeocode(ctx context.Context, query string) (domain.Place, error)
}
