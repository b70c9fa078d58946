package ports

import (
	"context"

	"go.trai.ch/compass/internal/core/domain"
)

// Backend is the trip-planning HTTP service.
//
//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// NearbyAirports lists up to limit airports within radiusKm of at, nearest first.
	NearbyAirports(ctx context.Context, at domain.Coordinates, radiusKm, limit int) ([]domain.Airport, error)

	// SearchFlights searches flights between two IATA codes.
	SearchFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error)

	// SearchHotels searches hotel offers around a position.
	SearchHotels(ctx context.Context, q domain.HotelQuery) (*domain.HotelResult, error)

	// SearchLocations returns suggestions matching keyword.
	SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error)

	// TripInfo searches hotels at the destination and flights from the origin in one call.
	TripInfo(ctx context.Context, q domain.TripQuery) (*domain.TripResult, error)

	// MapsKey returns the maps API key the backend hands out to clients.
	MapsKey(ctx context.Context) (string, error)
}
