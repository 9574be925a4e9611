package memory

import (
	"context"
	"sync"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/pkg/errs"
)

// StateRecorder keeps only the latest summary in memory. It is the recorder
// used when no durable store is configured.
type StateRecorder struct {
	mu       sync.RWMutex
	latest   inventory.StateSummary
	recorded bool
}

func NewStateRecorder() *StateRecorder {
	return &StateRecorder{}
}

func (r *StateRecorder) Record(_ context.Context, summary inventory.StateSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest = summary
	r.recorded = true
	return nil
}

func (r *StateRecorder) Latest(_ context.Context) (inventory.StateSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.recorded {
		return inventory.StateSummary{}, errs.NewObjectNotFoundError("stateSummary", "latest")
	}
	return r.latest, nil
}
