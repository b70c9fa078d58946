package orchestrator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestDispatch_Success(t *testing.T) {
	o, m := setupOrchestratorTest(t)
	r := mocks.NewMockReconciler(gomock.NewController(t))

	m.backend.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).Return(oneHotel(), nil)

	var rendered *domain.Payload
	gomock.InOrder(
		r.EXPECT().OnLoadingChange(true),
		r.EXPECT().OnSuccess(gomock.Any()).Do(func(p *domain.Payload) { rendered = p }),
		r.EXPECT().OnLoadingChange(false),
	)

	payload, err := o.Dispatch(context.Background(), hotelParams(), r)

	require.NoError(t, err)
	assert.Same(t, payload, rendered)
}

func TestDispatch_Error(t *testing.T) {
	o, m := setupOrchestratorTest(t)
	r := mocks.NewMockReconciler(gomock.NewController(t))

	m.backend.EXPECT().NearbyAirports(gomock.Any(), milan, gomock.Any(), gomock.Any()).
		Return([]domain.Airport{}, nil)
	m.backend.EXPECT().NearbyAirports(gomock.Any(), paris, gomock.Any(), gomock.Any()).
		Return([]domain.Airport{{IATA: "CDG"}}, nil).MaxTimes(1)

	gomock.InOrder(
		r.EXPECT().OnLoadingChange(true),
		r.EXPECT().OnError(domain.MsgNoAirports),
		r.EXPECT().OnLoadingChange(false),
	)

	payload, err := o.Dispatch(context.Background(), flightParams(), r)

	require.Error(t, err)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, domain.ErrNoAirportsInRadius)
}

func TestDispatch_UnresolvedOrigin(t *testing.T) {
	o, _ := setupOrchestratorTest(t)
	r := mocks.NewMockReconciler(gomock.NewController(t))

	params := flightParams()
	params.Origin = nil

	gomock.InOrder(
		r.EXPECT().OnLoadingChange(true),
		r.EXPECT().OnError(domain.MsgOriginUnresolved),
		r.EXPECT().OnLoadingChange(false),
	)

	_, err := o.Dispatch(context.Background(), params, r)
	assert.ErrorIs(t, err, domain.ErrOriginUnresolved)
}

func TestDispatch_LoadingClearedWhenRenderPanics(t *testing.T) {
	o, m := setupOrchestratorTest(t)
	r := mocks.NewMockReconciler(gomock.NewController(t))

	m.backend.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).Return(oneHotel(), nil)

	gomock.InOrder(
		r.EXPECT().OnLoadingChange(true),
		r.EXPECT().OnSuccess(gomock.Any()).Do(func(*domain.Payload) {
			panic(errors.New("render failed"))
		}),
		r.EXPECT().OnLoadingChange(false),
	)

	assert.Panics(t, func() {
		_, _ = o.Dispatch(context.Background(), hotelParams(), r)
	})
}
