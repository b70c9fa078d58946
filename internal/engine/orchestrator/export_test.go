package orchestrator

import "go.trai.ch/compass/internal/core/domain"

// NewSettledPending returns a Pending that has already settled with payload and err.
// This is exported for testing purposes only.
func NewSettledPending(payload *domain.Payload, err error) *Pending {
	p := newPending()
	p.settle(payload, err)
	return p
}
