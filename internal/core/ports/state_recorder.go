package ports

import (
	"context"

	"logistics/internal/core/domain/model/inventory"
)

// StateRecorder persists aggregate state summaries. Summaries are an audit
// trail only; the inventory is never rebuilt from them.
type StateRecorder interface {
	// Record stores a summary.
	Record(ctx context.Context, summary inventory.StateSummary) error

	// Latest returns the most recently recorded summary, or an error wrapping
	// errs.ErrObjectNotFound when nothing was recorded yet.
	Latest(ctx context.Context) (inventory.StateSummary, error)
}
