// Package ports defines the contracts between the application core and its adapters.
package ports

import (
	"context"

	"logistics/internal/core/domain/services"
)

// UnitOfWorkFactory creates a new UnitOfWork for each request, command or job run.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the single-writer boundary around the inventory.
// Client code must explicitly manage its lifecycle.
type UnitOfWork interface {
	// Begin acquires exclusive access to the inventory.
	Begin(ctx context.Context) error

	// Commit records the state summary and releases access.
	// Returns error if no unit of work is active.
	Commit(ctx context.Context) error

	// Rollback releases access without recording anything. In-memory mutations
	// already applied are not undone.
	// Returns error if no unit of work is active.
	Rollback(ctx context.Context) error

	// LogisticsManager returns the manager guarded by this unit of work.
	// It must only be used between Begin and Commit or Rollback.
	LogisticsManager() *services.LogisticsManager
}
