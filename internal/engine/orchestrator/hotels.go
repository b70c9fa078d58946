package orchestrator

import (
	"context"

	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/zerr"
)

func (o *Orchestrator) fetchHotels(ctx context.Context, params domain.SearchParams) (*domain.Payload, error) {
	ctx, span := o.tracer.Start(ctx, "backend.search_hotels")
	defer span.End()

	res, err := o.backend.SearchHotels(ctx, domain.HotelQuery{
		At:       *params.Destination,
		CheckIn:  params.CheckIn,
		CheckOut: params.CheckOut,
		Adults:   params.Adults,
		Rooms:    params.Rooms,
		RadiusKm: params.RadiusKm,
		Limit:    params.Limit,
	})
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(domain.WrapKind(domain.ErrHotelSearchFailed, err), "check_in", params.CheckIn)
	}

	payload := &domain.Payload{Mode: domain.ModeHotels, Coordinates: params.Destination}
	if res == nil {
		return payload, nil
	}
	if res.Coordinates != nil {
		payload.Coordinates = res.Coordinates
	}
	payload.Hotels, payload.Skipped = domain.NormalizeHotels(res.Offers)
	span.SetAttribute("hotels", len(payload.Hotels))
	span.SetAttribute("skipped", payload.Skipped)
	return payload, nil
}
