package orchestrator

import (
	"context"
	"errors"

	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// fetchFlights looks up airports around origin and destination concurrently, then searches
// flights between the nearest airport of each side. Either lookup failing aborts the
// search before any flight call.
func (o *Orchestrator) fetchFlights(ctx context.Context, params domain.SearchParams) (*domain.Payload, error) {
	if params.Origin == nil {
		return nil, domain.WrapKind(domain.ErrOriginUnresolved, nil)
	}

	var originAirports, destAirports []domain.Airport
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		originAirports, err = o.nearbyAirports(gctx, "origin", *params.Origin, params.RadiusKm)
		return err
	})
	g.Go(func() error {
		var err error
		destAirports, err = o.nearbyAirports(gctx, "destination", *params.Destination, params.RadiusKm)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	from, to := originAirports[0].IATA, destAirports[0].IATA

	ctx, span := o.tracer.Start(ctx, "backend.search_flights")
	defer span.End()
	span.SetAttribute("origin", from)
	span.SetAttribute("destination", to)

	flights, err := o.backend.SearchFlights(ctx, domain.FlightQuery{
		Origin:        from,
		Destination:   to,
		DepartureDate: params.CheckIn,
		Adults:        params.Adults,
	})
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.With(domain.WrapKind(domain.ErrFlightSearchFailed, err),
			"origin", from), "destination", to)
	}

	return &domain.Payload{
		Mode:                domain.ModeFlights,
		Flights:             flights,
		Coordinates:         params.Destination,
		OriginAirport:       from,
		DestinationAirport:  to,
		OriginAirports:      originAirports,
		DestinationAirports: destAirports,
	}, nil
}

// nearbyAirports returns the airports around at that carry an IATA code, nearest first.
// An empty answer, or the backend reporting that none exist, is ErrNoAirportsInRadius.
func (o *Orchestrator) nearbyAirports(
	ctx context.Context,
	side string,
	at domain.Coordinates,
	radiusKm int,
) ([]domain.Airport, error) {
	ctx, span := o.tracer.Start(ctx, "backend.nearby_airports")
	defer span.End()
	span.SetAttribute("side", side)
	span.SetAttribute("radius_km", radiusKm)

	airports, err := o.backend.NearbyAirports(ctx, at, radiusKm, domain.AirportLookupLimit)
	switch {
	case errors.Is(err, domain.ErrNoAirportsInRadius), errors.Is(err, domain.ErrNotFound):
		span.RecordError(err)
		return nil, zerr.With(zerr.With(domain.WrapKind(domain.ErrNoAirportsInRadius, err),
			"side", side), "radius_km", radiusKm)
	case err != nil:
		span.RecordError(err)
		return nil, zerr.With(domain.WrapKind(domain.ErrAirportLookupFailed, err), "side", side)
	}

	usable := make([]domain.Airport, 0, len(airports))
	for _, a := range airports {
		if a.IATA != "" {
			usable = append(usable, a)
		}
	}
	if len(usable) == 0 {
		return nil, zerr.With(zerr.With(domain.WrapKind(domain.ErrNoAirportsInRadius, nil),
			"side", side), "radius_km", radiusKm)
	}
	span.SetAttribute("airports", len(usable))
	return usable, nil
}
