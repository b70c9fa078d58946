package orchestrator

import (
	"context"
	"sync"

	"go.trai.ch/compass/internal/core/domain"
)

// Pending is a fetch that has not settled yet. Any number of callers may wait on it and
// all of them observe the same outcome.
type Pending struct {
	done    chan struct{}
	payload *domain.Payload
	err     error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// settle records the outcome and releases every waiter. It must be called exactly once.
func (p *Pending) settle(payload *domain.Payload, err error) {
	p.payload = payload
	p.err = err
	close(p.done)
}

// Wait blocks until the fetch settles or ctx is done. A settled outcome wins over a done
// ctx. Cancelling ctx only detaches this caller; the fetch keeps running for the others.
func (p *Pending) Wait(ctx context.Context) (*domain.Payload, error) {
	select {
	case <-p.done:
		return p.payload, p.err
	default:
	}

	select {
	case <-p.done:
		return p.payload, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Registry tracks the fetches in flight, at most one per fingerprint.
type Registry struct {
	mu      sync.Mutex
	entries map[domain.Fingerprint]*Pending
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[domain.Fingerprint]*Pending)}
}

// Get returns the fetch in flight for fp.
func (r *Registry) Get(fp domain.Fingerprint) (*Pending, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.entries[fp]
	return p, ok
}

// Set registers p as the fetch in flight for fp.
func (r *Registry) Set(fp domain.Fingerprint, p *Pending) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[fp] = p
}

// Delete forgets the fetch in flight for fp.
func (r *Registry) Delete(fp domain.Fingerprint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, fp)
}

// Len returns the number of fetches in flight.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
