// Package suggest serves location suggestions for a query that is still being typed.
package suggest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
	"go.trai.ch/zerr"
)

// MinQueryLength is the shortest query that is sent to the backend.
const MinQueryLength = 2

// Suggester looks up locations by keyword. Starting a new lookup cancels the previous one,
// and answers are cached by query for the lifetime of the Suggester.
type Suggester struct {
	backend ports.Backend
	tracer  ports.Tracer

	mu     sync.Mutex
	cancel context.CancelCauseFunc
	seq    uint64
	cache  map[string][]domain.Location
}

// New creates a Suggester.
func New(backend ports.Backend, tracer ports.Tracer) *Suggester {
	return &Suggester{
		backend: backend,
		tracer:  tracer,
		cache:   make(map[string][]domain.Location),
	}
}

func cacheKey(query string) string {
	return "loc-" + query
}

// Suggest returns the locations matching query. A lookup still running when Suggest is
// called again returns ErrSuperseded. Queries shorter than MinQueryLength return nothing.
func (s *Suggester) Suggest(ctx context.Context, query string) ([]domain.Location, error) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel(domain.ErrSuperseded)
		s.cancel = nil
	}
	if utf8.RuneCountInString(query) < MinQueryLength {
		s.mu.Unlock()
		return nil, nil
	}
	if locs, ok := s.cache[cacheKey(query)]; ok {
		s.mu.Unlock()
		return locs, nil
	}
	ctx, cancel := context.WithCancelCause(ctx)
	s.seq++
	seq := s.seq
	s.cancel = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.seq == seq {
			s.cancel = nil
		}
		s.mu.Unlock()
		cancel(nil)
	}()

	ctx, span := s.tracer.Start(ctx, "backend.search_locations")
	defer span.End()
	span.SetAttribute("keyword", query)

	locs, err := s.backend.SearchLocations(ctx, query)
	if errors.Is(context.Cause(ctx), domain.ErrSuperseded) {
		return nil, zerr.With(domain.WrapKind(domain.ErrSuperseded, nil), "keyword", query)
	}
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(domain.WrapKind(domain.ErrLocationSearchFailed, err), "keyword", query)
	}
	if locs == nil {
		locs = []domain.Location{}
	}

	s.mu.Lock()
	s.cache[cacheKey(query)] = locs
	s.mu.Unlock()

	span.SetAttribute("results", len(locs))
	return locs, nil
}

// Cached reports whether the answer for query is cached.
func (s *Suggester) Cached(query string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cache[cacheKey(strings.TrimSpace(query))]
	return ok
}
