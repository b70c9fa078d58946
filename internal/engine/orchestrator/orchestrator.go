// Package orchestrator resolves searches against the backend with caching and
// coalescing of identical requests.
package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stats counts how searches were served.
type Stats struct {
	CacheHits int64
	Coalesced int64
	Fetches   int64
}

// Orchestrator issues the backend calls for a search mode and owns the session's result
// cache and in-flight registry.
type Orchestrator struct {
	backend ports.Backend
	tracer  ports.Tracer
	logger  ports.Logger

	// mu makes the cache, in-flight and register steps of Resolve one atomic sequence.
	mu       sync.Mutex
	cache    *Cache
	inflight *Registry

	hits      atomic.Int64
	coalesced atomic.Int64
	fetches   atomic.Int64
}

// New creates an Orchestrator.
func New(backend ports.Backend, tracer ports.Tracer, logger ports.Logger, cache *Cache) *Orchestrator {
	if cache == nil {
		cache = NewCache(0)
	}
	return &Orchestrator{
		backend:  backend,
		tracer:   tracer,
		logger:   logger,
		cache:    cache,
		inflight: NewRegistry(),
	}
}

// Resolve returns the payload for params. A cached payload is returned without any
// network call. A search identical to one in flight waits for that fetch instead of
// starting another. Only non-empty successful payloads are cached.
func (o *Orchestrator) Resolve(ctx context.Context, params domain.SearchParams) (*domain.Payload, error) {
	if params.Destination == nil {
		return nil, domain.WrapKind(domain.ErrDestinationUnresolved, nil)
	}
	fp := params.Fingerprint()

	ctx, span := o.tracer.Start(ctx, "orchestrator.resolve")
	defer span.End()
	span.SetAttribute("mode", params.Mode.String())
	span.SetAttribute("fingerprint", fp.Digest())

	o.mu.Lock()
	if payload, ok := o.cache.Get(fp); ok {
		o.mu.Unlock()
		o.hits.Add(1)
		span.SetAttribute("source", "cache")
		o.logger.Debug(fmt.Sprintf("cache hit for %s search %s", params.Mode, fp.Digest()))
		return payload, nil
	}
	if p, ok := o.inflight.Get(fp); ok {
		o.mu.Unlock()
		o.coalesced.Add(1)
		span.SetAttribute("source", "inflight")
		o.logger.Debug(fmt.Sprintf("joining in-flight %s search %s", params.Mode, fp.Digest()))
		return o.wait(ctx, span, p)
	}
	p := newPending()
	o.inflight.Set(fp, p)
	o.mu.Unlock()

	o.fetches.Add(1)
	span.SetAttribute("source", "backend")
	o.logger.Debug(fmt.Sprintf("fetching %s search %s", params.Mode, fp.Digest()))

	go o.run(context.WithoutCancel(ctx), fp, params, p)
	return o.wait(ctx, span, p)
}

func (o *Orchestrator) wait(ctx context.Context, span ports.Span, p *Pending) (*domain.Payload, error) {
	payload, err := p.Wait(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return payload, err
}

// run performs the fetch for p and settles it. The registry entry is removed whatever the
// outcome, including a panic in a fetch step.
func (o *Orchestrator) run(ctx context.Context, fp domain.Fingerprint, params domain.SearchParams, p *Pending) {
	var (
		payload *domain.Payload
		err     error
	)
	defer func() {
		o.mu.Lock()
		if err == nil && !payload.Empty() {
			o.cache.Put(fp, payload)
		}
		o.inflight.Delete(fp)
		o.mu.Unlock()
		p.settle(payload, err)
	}()
	defer zerr.Defer(func(recovered error) {
		payload, err = nil, recovered
	})

	payload, err = o.fetch(ctx, params)
	if err == nil && payload == nil {
		payload = &domain.Payload{Mode: params.Mode}
	}
}

func (o *Orchestrator) fetch(ctx context.Context, params domain.SearchParams) (*domain.Payload, error) {
	switch params.Mode {
	case domain.ModeFlights:
		return o.fetchFlights(ctx, params)
	case domain.ModeHotels:
		return o.fetchHotels(ctx, params)
	case domain.ModeTrip:
		return o.fetchTrip(ctx, params)
	default:
		return nil, zerr.With(domain.WrapKind(domain.ErrInvalidMode, nil), "mode", string(params.Mode))
	}
}

// Stats returns a snapshot of the counters.
func (o *Orchestrator) Stats() Stats {
	return Stats{
		CacheHits: o.hits.Load(),
		Coalesced: o.coalesced.Load(),
		Fetches:   o.fetches.Load(),
	}
}

// Cached reports whether a payload for params is in the cache.
func (o *Orchestrator) Cached(params domain.SearchParams) bool {
	if params.Destination == nil {
		return false
	}
	_, ok := o.cache.Get(params.Fingerprint())
	return ok
}

// InFlight returns the number of fetches that have not settled yet.
func (o *Orchestrator) InFlight() int {
	return o.inflight.Len()
}
