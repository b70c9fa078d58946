package geocode_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compass/internal/adapters/geocode"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const parisAnswer = `{
  "status": "OK",
  "results": [
    {"formatted_address": "Paris, France", "geometry": {"location": {"lat": 48.8566, "lng": 2.3522}}},
    {"formatted_address": "Paris, TX, USA", "geometry": {"location": {"lat": 33.66, "lng": -95.55}}}
  ]
}`

type fakeGoogle struct {
	srv     *httptest.Server
	queries []map[string]string
}

func newFakeGoogle(t *testing.T, status int, body string) *fakeGoogle {
	t.Helper()
	f := &fakeGoogle{}
	r := mux.NewRouter()
	r.HandleFunc("/maps/api/geocode/json", func(w http.ResponseWriter, req *http.Request) {
		f.queries = append(f.queries, mux.Vars(req))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}).Queries("address", "{address}", "key", "{key}").Methods(http.MethodGet)

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeGoogle) url() string {
	return f.srv.URL + "/maps/api/geocode/json"
}

func TestForwardGeocode_FirstResult(t *testing.T) {
	google := newFakeGoogle(t, http.StatusOK, parisAnswer)
	g, err := geocode.New(google.url(), "configured-key", nil, 5*time.Second)
	require.NoError(t, err)

	place, err := g.ForwardGeocode(context.Background(), "  Paris ")

	require.NoError(t, err)
	assert.Equal(t, domain.Place{
		Coordinates: domain.Coordinates{Lat: 48.8566, Lng: 2.3522},
		Address:     "Paris, France",
	}, place)
	require.Len(t, google.queries, 1)
	assert.Equal(t, map[string]string{"address": "Paris", "key": "configured-key"}, google.queries[0])
}

func TestForwardGeocode_CoordinatesSkipNetwork(t *testing.T) {
	google := newFakeGoogle(t, http.StatusOK, parisAnswer)
	g, err := geocode.New(google.url(), "", nil, time.Second)
	require.NoError(t, err)

	place, err := g.ForwardGeocode(context.Background(), "45.46, 9.19")

	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 45.46, Lng: 9.19}, place.Coordinates)
	assert.Equal(t, "45.46,9.19", place.Address)
	assert.Empty(t, google.queries)

	_, err = g.ForwardGeocode(context.Background(), "91,0")
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinates)
}

func TestForwardGeocode_FetchesKeyOnce(t *testing.T) {
	google := newFakeGoogle(t, http.StatusOK, parisAnswer)
	ctrl := gomock.NewController(t)
	keys := mocks.NewMockBackend(ctrl)
	gomock.InOrder(
		keys.EXPECT().MapsKey(gomock.Any()).Return("", errors.New("backend down")),
		keys.EXPECT().MapsKey(gomock.Any()).Return("backend-key", nil),
	)

	g, err := geocode.New(google.url(), "", keys, time.Second)
	require.NoError(t, err)

	_, err = g.ForwardGeocode(context.Background(), "Paris")
	require.ErrorIs(t, err, domain.ErrGeocodeFailed)
	assert.Empty(t, google.queries)

	for range 2 {
		_, err = g.ForwardGeocode(context.Background(), "Paris")
		require.NoError(t, err)
	}
	require.Len(t, google.queries, 2)
	assert.Equal(t, "backend-key", google.queries[1]["key"])
}

func TestForwardGeocode_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		query  string
		want   error
	}{
		{name: "ZeroResults", status: http.StatusOK, body: `{"status":"ZERO_RESULTS","results":[]}`, query: "Atlantis", want: domain.ErrLocationNotFound},
		{name: "OKWithoutResults", status: http.StatusOK, body: `{"status":"OK","results":[]}`, query: "Atlantis", want: domain.ErrLocationNotFound},
		{name: "Denied", status: http.StatusOK, body: `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`, query: "Paris", want: domain.ErrGeocodeFailed},
		{name: "ServerError", status: http.StatusInternalServerError, body: `oops`, query: "Paris", want: domain.ErrGeocodeFailed},
		{name: "Malformed", status: http.StatusOK, body: `{"status":`, query: "Paris", want: domain.ErrDecodeFailed},
		{name: "OutOfRange", status: http.StatusOK, body: `{"status":"OK","results":[{"geometry":{"location":{"lat":123,"lng":0}}}]}`, query: "Paris", want: domain.ErrInvalidCoordinates},
		{name: "Empty", status: http.StatusOK, body: parisAnswer, query: "   ", want: domain.ErrLocationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			google := newFakeGoogle(t, tt.status, tt.body)
			g, err := geocode.New(google.url(), "k", nil, time.Second)
			require.NoError(t, err)

			_, err = g.ForwardGeocode(context.Background(), tt.query)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestForwardGeocode_DeniedCarriesMessage(t *testing.T) {
	google := newFakeGoogle(t, http.StatusOK, `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`)
	g, err := geocode.New(google.url(), "k", nil, time.Second)
	require.NoError(t, err)

	_, err = g.ForwardGeocode(context.Background(), "Paris")

	msg, ok := domain.ReportedMessage(err)
	require.True(t, ok)
	assert.Equal(t, "The provided API key is invalid.", msg)
}

func TestForwardGeocode_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + "/maps/api/geocode/json"
	srv.Close()

	g, err := geocode.New(endpoint, "SECRET-MAPS-KEY", nil, time.Second)
	require.NoError(t, err)

	_, err = g.ForwardGeocode(context.Background(), "Paris")

	require.ErrorIs(t, err, domain.ErrGeocodeFailed)
	assert.NotContains(t, err.Error(), "SECRET-MAPS-KEY")
	assert.NotContains(t, domain.UserMessage(err), "SECRET-MAPS-KEY")

	var ue *url.Error
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.URL, "key=REDACTED")
}

func TestForwardGeocode_NoKeySource(t *testing.T) {
	google := newFakeGoogle(t, http.StatusOK, parisAnswer)
	g, err := geocode.New(google.url(), "", nil, time.Second)
	require.NoError(t, err)

	_, err = g.ForwardGeocode(context.Background(), "Paris")

	require.ErrorIs(t, err, domain.ErrGeocodeFailed)
	assert.ErrorIs(t, err, domain.ErrMapsKeyFailed)
}

func TestNew_RejectsInvalidURL(t *testing.T) {
	for _, raw := range []string{"", "maps.example.com", "ftp://maps.example.com"} {
		_, err := geocode.New(raw, "k", nil, time.Second)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig, raw)
	}
}
