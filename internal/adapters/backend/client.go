// Package backend implements the Backend port against the trip-planning HTTP service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/compass/internal/build"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// RequestIDHeader carries a unique id per request for correlation in backend logs.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes       = 8 << 20
	maxReportedMessage = 200
)

// Client implements ports.Backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	return newClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrInvalidConfig, err), "backend_url", baseURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, zerr.With(domain.WrapKind(domain.ErrInvalidConfig, nil), "backend_url", baseURL)
	}
	return &Client{baseURL: u, httpClient: httpClient}, nil
}

// NearbyAirports lists airports around at. The service answers either a list or an
// object carrying an error, which means no airport qualifies.
func (c *Client) NearbyAirports(
	ctx context.Context,
	at domain.Coordinates,
	radiusKm, limit int,
) ([]domain.Airport, error) {
	q := url.Values{}
	q.Set("lat", formatFloat(at.Lat))
	q.Set("lng", formatFloat(at.Lng))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("radius", strconv.Itoa(radiusKm))

	var raw json.RawMessage
	if err := c.get(ctx, "/nearby-airports", q, &raw); err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		var body errorBody
		if err := json.Unmarshal(trimmed, &body); err != nil {
			return nil, zerr.With(domain.WrapKind(domain.ErrDecodeFailed, err), "path", "/nearby-airports")
		}
		return nil, zerr.With(domain.WrapKind(domain.ErrNoAirportsInRadius, nil), "message", body.text())
	}

	var airports []domain.Airport
	if err := json.Unmarshal(raw, &airports); err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrDecodeFailed, err), "path", "/nearby-airports")
	}
	return airports, nil
}

// SearchFlights searches flights between two airports.
func (c *Client) SearchFlights(ctx context.Context, fq domain.FlightQuery) ([]domain.Flight, error) {
	q := url.Values{}
	q.Set("origin", fq.Origin)
	q.Set("destination", fq.Destination)
	q.Set("departureDate", fq.DepartureDate)
	q.Set("adults", strconv.Itoa(fq.Adults))

	var flights []domain.Flight
	if err := c.get(ctx, "/search/flights", q, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// SearchHotels searches hotel offers around hq.At.
func (c *Client) SearchHotels(ctx context.Context, hq domain.HotelQuery) (*domain.HotelResult, error) {
	q := url.Values{}
	q.Set("lat", formatFloat(hq.At.Lat))
	q.Set("lng", formatFloat(hq.At.Lng))
	q.Set("checkInDate", hq.CheckIn)
	q.Set("adults", strconv.Itoa(hq.Adults))
	q.Set("roomQuantity", strconv.Itoa(hq.Rooms))
	if hq.CheckOut != "" {
		q.Set("checkOutDate", hq.CheckOut)
	}
	if hq.RadiusKm > 0 {
		q.Set("radiusKm", strconv.Itoa(hq.RadiusKm))
	}
	if hq.Limit > 0 {
		q.Set("limit", strconv.Itoa(hq.Limit))
	}

	var res domain.HotelResult
	if err := c.get(ctx, "/search/nearby", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchLocations returns location suggestions for keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error) {
	q := url.Values{}
	q.Set("keyword", keyword)

	var locs []domain.Location
	if err := c.get(ctx, "/search/locations", q, &locs); err != nil {
		return nil, err
	}
	return locs, nil
}

// TripInfo searches hotels and flights for a trip in one call.
func (c *Client) TripInfo(ctx context.Context, tq domain.TripQuery) (*domain.TripResult, error) {
	q := url.Values{}
	q.Set("lat", formatFloat(tq.Destination.Lat))
	q.Set("lng", formatFloat(tq.Destination.Lng))
	q.Set("originLat", formatFloat(tq.Origin.Lat))
	q.Set("originLng", formatFloat(tq.Origin.Lng))
	q.Set("checkInDate", tq.CheckIn)
	q.Set("adults", strconv.Itoa(tq.Adults))
	q.Set("roomQuantity", strconv.Itoa(tq.Rooms))
	if tq.CheckOut != "" {
		q.Set("checkOutDate", tq.CheckOut)
	}

	var res domain.TripResult
	if err := c.get(ctx, "/trip-info", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MapsKey returns the maps API key handed out by the service.
func (c *Client) MapsKey(ctx context.Context) (string, error) {
	var body struct {
		APIKey string `json:"apiKey"`
	}
	if err := c.get(ctx, "/config/maps-key", nil, &body); err != nil {
		return "", domain.WrapKind(domain.ErrMapsKeyFailed, err)
	}
	if body.APIKey == "" {
		return "", zerr.With(domain.WrapKind(domain.ErrMapsKeyFailed, nil), "message", "Google Maps API key not configured")
	}
	return body.APIKey, nil
}

// get issues a GET for path and decodes a 2xx JSON answer into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrBackendUnreachable, err), "path", path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", build.UserAgent())
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrBackendUnreachable, err), "path", path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrBackendUnreachable, err), "path", path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp.StatusCode, path, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrDecodeFailed, err), "path", path)
	}
	return nil
}

// statusError maps a non-2xx answer to its sentinel. Every such error matches
// ErrBackendReported and carries the service's message.
func statusError(status int, path string, body []byte) error {
	var err error
	switch status {
	case http.StatusBadRequest:
		err = domain.WrapKind(domain.ErrInvalidRequest, domain.ErrBackendReported)
	case http.StatusNotFound:
		err = domain.WrapKind(domain.ErrNotFound, domain.ErrBackendReported)
	case http.StatusBadGateway:
		err = domain.WrapKind(domain.ErrUpstream, domain.ErrBackendReported)
	case http.StatusGatewayTimeout:
		err = domain.WrapKind(domain.ErrTimeout, domain.ErrBackendReported)
	default:
		err = domain.WrapKind(domain.ErrBackendReported, nil)
	}
	err = zerr.With(err, "status_code", status)
	err = zerr.With(err, "path", path)
	return zerr.With(err, "message", reportedMessage(body))
}

type errorBody struct {
	Error   any `json:"error"`
	Message any `json:"message"`
}

// text picks error over message, falling back to a generic message.
func (b errorBody) text() string {
	for _, v := range []any{b.Error, b.Message} {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return domain.MsgUnknownError
}

// reportedMessage extracts the message of an error answer. Plain-text answers are
// used as-is when short enough to show.
func reportedMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return domain.MsgUnknownError
	}
	if trimmed[0] == '{' {
		var eb errorBody
		if err := json.Unmarshal(trimmed, &eb); err == nil {
			return eb.text()
		}
		return domain.MsgUnknownError
	}
	if len(trimmed) <= maxReportedMessage && !bytes.ContainsAny(trimmed, "<>") {
		return string(trimmed)
	}
	return domain.MsgUnknownError
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
