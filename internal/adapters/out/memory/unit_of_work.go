// Package memory holds the live inventory and serializes access to it.
//
// The inventory graph lives only in process memory. A Store owns the single
// LogisticsManager; every command, query and job reaches it through a
// UnitOfWork, which takes the store's writer slot on Begin and gives it back
// on Commit or Rollback. Commit also records a state summary.
//
// Usage:
//
//	store := memory.NewStore(manager, recorder, logger)
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	uow.LogisticsManager().SetOffloadOrder("newest_first")
//
//	return uow.Commit(ctx)
//
// Rollback only releases the slot. Mutations already applied to the manager
// stay in place.
package memory

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

var ErrNoActiveUnitOfWork = errors.New("no active unit of work")

// Store owns the inventory. At most one unit of work holds it at a time.
type Store struct {
	slot     chan struct{}
	manager  *services.LogisticsManager
	recorder ports.StateRecorder
	logger   *slog.Logger
}

func NewStore(manager *services.LogisticsManager, recorder ports.StateRecorder, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		slot:     make(chan struct{}, 1),
		manager:  manager,
		recorder: recorder,
		logger:   logger.With("component", "UnitOfWork"),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.slot
}

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a unit of work that has not begun yet.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin waits for the writer slot or for ctx to end. Calling Begin twice on
// the same unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := uow.store.acquire(ctx); err != nil {
		return err
	}
	uow.active = true
	return nil
}

// Commit records the current state summary and releases the slot. A recorder
// failure is logged and does not fail the commit.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}
	defer uow.finish()

	if uow.store.recorder == nil {
		return nil
	}
	summary := uow.store.manager.Summary()
	if err := uow.store.recorder.Record(ctx, summary); err != nil {
		uow.store.logger.Error("failed to record state summary",
			"error", err,
			"warehouses", summary.Warehouses,
			"packages", summary.Packages,
		)
	}
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}
	uow.finish()
	return nil
}

func (uow *UnitOfWork) LogisticsManager() *services.LogisticsManager {
	return uow.store.manager
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.store.release()
}
