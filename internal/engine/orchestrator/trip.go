package orchestrator

import (
	"context"

	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/zerr"
)

func (o *Orchestrator) fetchTrip(ctx context.Context, params domain.SearchParams) (*domain.Payload, error) {
	if params.Origin == nil {
		return nil, domain.WrapKind(domain.ErrOriginUnresolved, nil)
	}

	ctx, span := o.tracer.Start(ctx, "backend.trip_info")
	defer span.End()

	res, err := o.backend.TripInfo(ctx, domain.TripQuery{
		Destination: *params.Destination,
		Origin:      *params.Origin,
		CheckIn:     params.CheckIn,
		CheckOut:    params.CheckOut,
		Adults:      params.Adults,
		Rooms:       params.Rooms,
	})
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(domain.WrapKind(domain.ErrTripInfoFailed, err), "check_in", params.CheckIn)
	}

	payload := &domain.Payload{Mode: domain.ModeTrip, Coordinates: params.Destination}
	if res == nil {
		return payload, nil
	}
	if res.Coordinates != nil {
		payload.Coordinates = res.Coordinates
	}
	payload.Hotels, payload.Skipped = domain.NormalizeHotels(res.Hotels)
	payload.Flights = res.Flights
	payload.OriginAirport = res.OriginAirport
	payload.DestinationAirport = res.DestinationAirport
	return payload, nil
}
