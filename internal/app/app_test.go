package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compass/internal/adapters/telemetry"
	"go.trai.ch/compass/internal/app"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports/mocks"
	"go.trai.ch/compass/internal/engine/orchestrator"
	"go.trai.ch/compass/internal/engine/suggest"
	"go.uber.org/mock/gomock"
)

var (
	paris = domain.Coordinates{Lat: 48.86, Lng: 2.35}
	lyon  = domain.Coordinates{Lat: 45.76, Lng: 4.84}
)

type appTestMocks struct {
	backend  *mocks.MockBackend
	geocoder *mocks.MockGeocoder
	logger   *mocks.MockLogger
}

func setupApp(t *testing.T) (*app.App, *bytes.Buffer, appTestMocks) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	m := appTestMocks{
		backend:  mocks.NewMockBackend(ctrl),
		geocoder: mocks.NewMockGeocoder(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	tracer := telemetry.NewNoOpTracer()
	orch := orchestrator.New(m.backend, tracer, m.logger, orchestrator.NewCache(0))
	stdout := new(bytes.Buffer)

	a := app.New(orch, suggest.New(m.backend, tracer), m.geocoder, m.logger, domain.DefaultConfig()).
		WithOutput(stdout).
		WithClock(func() time.Time { return time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC) }).
		WithTeaOptions(
			tea.WithInput(strings.NewReader("")),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
		)
	return a, stdout, m
}

func hotelResult(name string) *domain.HotelResult {
	return &domain.HotelResult{Offers: []domain.RawHotel{{
		HotelID: "H-" + name,
		Offers: []domain.HotelOfferEntry{{
			Hotel:  domain.HotelInfo{Name: name},
			Offers: []domain.RoomOffer{{Price: domain.Price{Total: "210.00", Currency: "EUR"}}},
		}},
	}}}
}

func (m appTestMocks) expectPlace(query string, at domain.Coordinates) {
	m.geocoder.EXPECT().ForwardGeocode(gomock.Any(), query).
		Return(domain.Place{Coordinates: at, Address: query + ", FR"}, nil).AnyTimes()
}

func TestApp_Search_LinearHotels(t *testing.T) {
	a, stdout, m := setupApp(t)
	m.expectPlace("Paris", paris)

	m.backend.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.HotelQuery) (*domain.HotelResult, error) {
			assert.Equal(t, paris, q.At)
			assert.Equal(t, "2025-07-10", q.CheckIn)
			assert.Equal(t, 1, q.Adults)
			assert.Equal(t, 1, q.Rooms)
			assert.Equal(t, domain.DefaultHotelRadiusKm, q.RadiusKm)
			return hotelResult("Le Marais"), nil
		},
	)

	err := a.Search(t.Context(), domain.SearchRequest{Mode: domain.ModeHotels, To: "Paris"},
		app.SearchOptions{Output: domain.OutputLinear})

	require.NoError(t, err)
	assert.Equal(t, "● hotels Paris\n  ✓ 1 hotel\n  1. Le Marais  210.00 EUR\n", stdout.String())
}

func TestApp_Search_UnresolvedDestination(t *testing.T) {
	a, stdout, m := setupApp(t)
	m.geocoder.EXPECT().ForwardGeocode(gomock.Any(), "Atlantis").
		Return(domain.Place{}, domain.WrapKind(domain.ErrLocationNotFound, nil))
	m.logger.EXPECT().Warn(`could not resolve destination "Atlantis": location not found`)

	err := a.Search(t.Context(), domain.SearchRequest{Mode: domain.ModeHotels, To: "Atlantis"},
		app.SearchOptions{Output: domain.OutputLinear})

	require.ErrorIs(t, err, domain.ErrSearchFailed)
	require.ErrorIs(t, err, domain.ErrDestinationUnresolved)
	assert.Contains(t, stdout.String(), "✗ "+domain.MsgDestinationUnresolved)
}

func TestApp_Search_FlightsWithoutOrigin(t *testing.T) {
	a, stdout, m := setupApp(t)
	m.expectPlace("Paris", paris)

	err := a.Search(t.Context(), domain.SearchRequest{Mode: domain.ModeFlights, To: "Paris"},
		app.SearchOptions{Output: domain.OutputLinear})

	require.ErrorIs(t, err, domain.ErrOriginUnresolved)
	assert.Contains(t, stdout.String(), domain.MsgOriginUnresolved)
}

func TestApp_Search_RejectedBeforeGeocoding(t *testing.T) {
	tests := []struct {
		name string
		req  domain.SearchRequest
		want error
	}{
		{
			name: "UnknownMode",
			req:  domain.SearchRequest{Mode: "cruises", To: "Paris"},
			want: domain.ErrInvalidMode,
		},
		{
			name: "BadDate",
			req:  domain.SearchRequest{Mode: domain.ModeHotels, To: "Paris", CheckIn: "10/07/2025"},
			want: domain.ErrInvalidDate,
		},
		{
			name: "CheckOutBeforeCheckIn",
			req:  domain.SearchRequest{Mode: domain.ModeHotels, To: "Paris", CheckIn: "2025-07-10", CheckOut: "2025-07-10"},
			want: domain.ErrCheckOutBeforeCheckIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, stdout, _ := setupApp(t)

			err := a.Search(t.Context(), tt.req, app.SearchOptions{Output: domain.OutputLinear})

			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestApp_Search_Interactive(t *testing.T) {
	a, stdout, m := setupApp(t)
	a.WithExitOnDone()
	m.expectPlace("Paris", paris)
	m.backend.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).Return(hotelResult("Le Marais"), nil)

	err := a.Search(t.Context(), domain.SearchRequest{Mode: domain.ModeHotels, To: "Paris"},
		app.SearchOptions{Output: domain.OutputTUI})

	require.NoError(t, err)
	assert.Empty(t, stdout.String())
}

func TestApp_Search_InteractiveReportsFailure(t *testing.T) {
	a, _, m := setupApp(t)
	a.WithExitOnDone()
	m.expectPlace("Paris", paris)
	m.backend.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).
		Return(nil, domain.WrapKind(domain.ErrUpstream, domain.ErrBackendReported))

	err := a.Search(t.Context(), domain.SearchRequest{Mode: domain.ModeHotels, To: "Paris"},
		app.SearchOptions{Output: domain.OutputTUI})

	require.ErrorIs(t, err, domain.ErrSearchFailed)
	require.ErrorIs(t, err, domain.ErrHotelSearchFailed)
}

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "searches.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestApp_Batch_SharesResults(t *testing.T) {
	a, stdout, m := setupApp(t)
	m.expectPlace("Paris", paris)
	m.expectPlace("Lyon", lyon)

	m.backend.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.HotelQuery) (*domain.HotelResult, error) {
			if q.At == lyon {
				return hotelResult("Bellecour"), nil
			}
			return hotelResult("Le Marais"), nil
		},
	).Times(2)
	m.logger.EXPECT().Info("3 searches: 2 fetched, 1 cached, 0 coalesced")

	path := writeBatch(t, `
searches:
  - name: weekend
    mode: hotels
    to: Paris
    check_in: "2025-07-10"
  - mode: hotels
    to: Paris
    check_in: "2025-07-10"
  - mode: hotels
    to: Lyon
    check_in: "2025-07-10"
`)

	err := a.Batch(t.Context(), path, app.BatchOptions{Concurrency: 1})

	require.NoError(t, err)
	out := stdout.String()
	assert.Equal(t, 2, strings.Count(out, "1. Le Marais"))
	assert.Contains(t, out, "● weekend\n")
	assert.Contains(t, out, "● hotels Lyon\n  ✓ 1 hotel\n  1. Bellecour")
}

func TestApp_Batch_ContinuesAfterFailure(t *testing.T) {
	a, stdout, m := setupApp(t)
	m.expectPlace("Paris", paris)
	m.expectPlace("Lyon", lyon)

	m.backend.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.HotelQuery) (*domain.HotelResult, error) {
			if q.At == lyon {
				return nil, errors.New("connection reset")
			}
			return hotelResult("Le Marais"), nil
		},
	).Times(2)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrInvalidMode)
	})
	m.logger.EXPECT().Info("3 searches: 2 fetched, 0 cached, 0 coalesced")

	path := writeBatch(t, `
searches:
  - {mode: hotels, to: Paris}
  - {mode: hotels, to: Lyon}
  - {mode: cruises, to: Lyon}
`)

	err := a.Batch(t.Context(), path, app.BatchOptions{})

	require.ErrorIs(t, err, domain.ErrSearchFailed)
	assert.Contains(t, stdout.String(), "1. Le Marais")
	assert.Contains(t, stdout.String(), "✗ ")
}

func TestApp_Batch_ReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Malformed", content: "searches: ["},
		{name: "UnknownField", content: "searches:\n  - {mode: hotels, to: Paris, nights: 2}\n"},
		{name: "Empty", content: ""},
		{name: "NoSearches", content: "searches: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := setupApp(t)

			err := a.Batch(t.Context(), writeBatch(t, tt.content), app.BatchOptions{})

			require.ErrorIs(t, err, domain.ErrBatchReadFailed)
		})
	}

	t.Run("MissingFile", func(t *testing.T) {
		a, _, _ := setupApp(t)

		err := a.Batch(t.Context(), filepath.Join(t.TempDir(), "missing.yaml"), app.BatchOptions{})

		require.ErrorIs(t, err, domain.ErrBatchReadFailed)
	})
}

func TestApp_Locations(t *testing.T) {
	a, stdout, m := setupApp(t)
	m.backend.EXPECT().SearchLocations(gomock.Any(), "par").Return([]domain.Location{
		{Name: "Paris", IATACode: "PAR", Lat: 48.8566, Lng: 2.3522},
		{Name: "Parma", Lat: 44.8015, Lng: 10.328},
	}, nil)

	require.NoError(t, a.Locations(t.Context(), "par"))
	assert.Equal(t, "Paris (PAR)  48.8566,2.3522\nParma  44.8015,10.328\n", stdout.String())
}

func TestApp_Locations_Superseded(t *testing.T) {
	a, stdout, m := setupApp(t)
	started := make(chan struct{})
	m.backend.EXPECT().SearchLocations(gomock.Any(), "pa").DoAndReturn(
		func(ctx context.Context, _ string) ([]domain.Location, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)
	m.backend.EXPECT().SearchLocations(gomock.Any(), "par").
		Return([]domain.Location{{Name: "Paris", IATACode: "PAR", Lat: 48.8566, Lng: 2.3522}}, nil)

	first := make(chan error, 1)
	go func() {
		first <- a.Locations(t.Context(), "pa")
	}()
	<-started

	require.NoError(t, a.Locations(t.Context(), "par"))
	require.NoError(t, <-first)
	assert.Equal(t, "Paris (PAR)  48.8566,2.3522\n", stdout.String())
}

func TestApp_Locations_NoMatch(t *testing.T) {
	a, stdout, m := setupApp(t)
	m.logger.EXPECT().Warn(`no locations match "p"`)

	require.NoError(t, a.Locations(t.Context(), "p"))
	assert.Empty(t, stdout.String())
}
