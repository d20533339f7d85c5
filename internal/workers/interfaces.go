// Package workers runs background jobs next to the local API.
//
// The [Workers] aggregate starts every [Worker] and waits for all of them to
// return once their context is cancelled.
package workers

import (
	"context"

	"github.com/MKhiriev/anything-list/models"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// BindingStateSource reads the current binding state.
type BindingStateSource interface {
	FetchBindingState(ctx context.Context) (models.BindingState, error)
}
