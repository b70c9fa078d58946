package ports

import "go.trai.ch/compass/internal/core/domain"

// Reconciler applies search outcomes to the user interface.
// For every search it receives OnLoadingChange(true), then exactly one of OnSuccess or
// OnError, then OnLoadingChange(false).
//
//go:generate mockgen -source=reconciler.go -destination=mocks/mock_reconciler.go -package=mocks
type Reconciler interface {
	// OnLoadingChange toggles the loading indicator. Loading starts with each new request,
	// which clears the error banner; the end of loading leaves the banner in place.
	OnLoadingChange(loading bool)

	// OnSuccess renders a payload.
	OnSuccess(payload *domain.Payload)

	// OnError shows message on the error banner.
	OnError(message string)
}
