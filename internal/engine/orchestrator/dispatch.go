package orchestrator

import (
	"context"

	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
)

// Dispatch resolves params and reports the outcome to r. r sees OnLoadingChange(true),
// exactly one of OnSuccess or OnError, then OnLoadingChange(false). The final loading
// change also happens when the terminal callback panics; the panic is propagated.
func (o *Orchestrator) Dispatch(
	ctx context.Context,
	params domain.SearchParams,
	r ports.Reconciler,
) (*domain.Payload, error) {
	r.OnLoadingChange(true)
	defer r.OnLoadingChange(false)

	payload, err := o.Resolve(ctx, params)
	if err != nil {
		r.OnError(domain.UserMessage(err))
		return nil, err
	}
	r.OnSuccess(payload)
	return payload, nil
}
