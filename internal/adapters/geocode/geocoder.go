// Package geocode resolves typed place names into coordinates with the Google
// Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.trai.ch/compass/internal/build"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxBodyBytes = 1 << 20

// Statuses of a Geocoding API answer that are not failures.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// KeySource hands out a maps API key when none is configured.
type KeySource interface {
	MapsKey(ctx context.Context) (string, error)
}

// Geocoder implements ports.Geocoder.
type Geocoder struct {
	endpoint   *url.URL
	httpClient *http.Client
	keys       KeySource

	mu  sync.Mutex
	key string
}

// New creates a Geocoder querying endpoint. An empty key is fetched from keys on the
// first lookup that needs one.
func New(endpoint, key string, keys KeySource, timeout time.Duration) (*Geocoder, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrInvalidConfig, err), "geocode_url", endpoint)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, zerr.With(domain.WrapKind(domain.ErrInvalidConfig, nil), "geocode_url", endpoint)
	}
	return &Geocoder{
		endpoint:   u,
		httpClient: &http.Client{Timeout: timeout},
		keys:       keys,
		key:        key,
	}, nil
}

// ForwardGeocode returns the first match for query. A "lat,lng" query is parsed
// without a network call.
func (g *Geocoder) ForwardGeocode(ctx context.Context, query string) (domain.Place, error) {
	query = strings.TrimSpace(query)
	if c, ok, err := domain.ParseCoordinates(query); ok {
		if err != nil {
			return domain.Place{}, err
		}
		return domain.Place{Coordinates: c, Address: c.String()}, nil
	}
	if query == "" {
		return domain.Place{}, domain.WrapKind(domain.ErrLocationNotFound, nil)
	}

	key, err := g.apiKey(ctx)
	if err != nil {
		return domain.Place{}, zerr.With(domain.WrapKind(domain.ErrGeocodeFailed, err), "query", query)
	}

	ans, err := g.lookup(ctx, query, key)
	if err != nil {
		return domain.Place{}, zerr.With(domain.WrapKind(domain.ErrGeocodeFailed, err), "query", query)
	}

	switch ans.Status {
	case statusOK:
	case statusZeroResults:
		return domain.Place{}, zerr.With(domain.WrapKind(domain.ErrLocationNotFound, nil), "query", query)
	default:
		err := zerr.With(domain.WrapKind(domain.ErrGeocodeFailed, nil), "status", ans.Status)
		if ans.ErrorMessage != "" {
			err = zerr.With(err, "message", ans.ErrorMessage)
		}
		return domain.Place{}, zerr.With(err, "query", query)
	}
	if len(ans.Results) == 0 {
		return domain.Place{}, zerr.With(domain.WrapKind(domain.ErrLocationNotFound, nil), "query", query)
	}

	first := ans.Results[0]
	c := domain.Coordinates{Lat: first.Geometry.Location.Lat, Lng: first.Geometry.Location.Lng}
	if err := c.Validate(); err != nil {
		return domain.Place{}, zerr.With(domain.WrapKind(domain.ErrGeocodeFailed, err), "query", query)
	}
	return domain.Place{Coordinates: c, Address: first.FormattedAddress}, nil
}

// apiKey returns the configured key or fetches one. Failures are not remembered.
func (g *Geocoder) apiKey(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.key != "" {
		return g.key, nil
	}
	if g.keys == nil {
		return "", domain.WrapKind(domain.ErrMapsKeyFailed, nil)
	}
	key, err := g.keys.MapsKey(ctx)
	if err != nil {
		return "", err
	}
	g.key = key
	return key, nil
}

type answer struct {
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message"`
	Results      []result `json:"results"`
}

type result struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

func (g *Geocoder) lookup(ctx context.Context, query, key string) (*answer, error) {
	u := *g.endpoint
	q := u.Query()
	q.Set("address", query)
	q.Set("key", key)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", build.UserAgent())

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, redactKey(err, key)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.New("unexpected status"), "status_code", resp.StatusCode)
	}

	var ans answer
	if err := json.Unmarshal(body, &ans); err != nil {
		return nil, domain.WrapKind(domain.ErrDecodeFailed, err)
	}
	return &ans, nil
}

// redactKey strips the API key from the request URL that net/http errors carry.
func redactKey(err error, key string) error {
	var ue *url.Error
	if key == "" || !errors.As(err, &ue) {
		return err
	}
	ue.URL = strings.ReplaceAll(ue.URL, url.QueryEscape(key), "REDACTED")
	ue.URL = strings.ReplaceAll(ue.URL, key, "REDACTED")
	return err
}
