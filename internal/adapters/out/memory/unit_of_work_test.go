package memory_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStateRecorder struct{ mock.Mock }

func (m *MockStateRecorder) Record(ctx context.Context, summary inventory.StateSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockStateRecorder) Latest(ctx context.Context) (inventory.StateSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(inventory.StateSummary), args.Error(1)
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T, recorder *MockStateRecorder) (*memory.Store, *services.LogisticsManager) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager, err := services.NewLogisticsManager(inventory.NewRegistry(), func() time.Time { return fixedNow }, logger)
	require.NoError(t, err)
	return memory.NewStore(manager, recorder, logger), manager
}

func TestUnitOfWork_Commit(t *testing.T) {
	t.Run("should record the summary on commit", func(t *testing.T) {
		ctx := t.Context()
		recorder := new(MockStateRecorder)
		store, manager := newStore(t, recorder)
		_, err := manager.CreateWarehouse("North", decimal.NewFromInt(10))
		require.NoError(t, err)

		expected := inventory.StateSummary{RecordedAt: fixedNow, Warehouses: 1}
		recorder.On("Record", ctx, expected).Return(nil).Once()

		uow := memory.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))

		recorder.AssertExpectations(t)
	})

	t.Run("should not fail when the recorder fails", func(t *testing.T) {
		ctx := t.Context()
		recorder := new(MockStateRecorder)
		store, _ := newStore(t, recorder)
		recorder.On("Record", ctx, mock.Anything).Return(errors.New("disk full")).Once()

		uow := memory.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))

		assert.NoError(t, uow.Commit(ctx))
		recorder.AssertExpectations(t)
	})

	t.Run("should reject commit without begin", func(t *testing.T) {
		store, _ := newStore(t, new(MockStateRecorder))
		uow := memory.NewUnitOfWorkFactory(store).Create()

		assert.ErrorIs(t, uow.Commit(t.Context()), memory.ErrNoActiveUnitOfWork)
	})
}

func TestUnitOfWork_Rollback(t *testing.T) {
	t.Run("should release without recording", func(t *testing.T) {
		ctx := t.Context()
		recorder := new(MockStateRecorder)
		store, _ := newStore(t, recorder)
		factory := memory.NewUnitOfWorkFactory(store)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Rollback(ctx))

		next := factory.Create()
		require.NoError(t, next.Begin(ctx))
		require.NoError(t, next.Rollback(ctx))
		recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("should fail after commit", func(t *testing.T) {
		ctx := t.Context()
		recorder := new(MockStateRecorder)
		recorder.On("Record", ctx, mock.Anything).Return(nil)
		store, _ := newStore(t, recorder)

		uow := memory.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))

		assert.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveUnitOfWork)
	})
}

func TestUnitOfWork_Begin(t *testing.T) {
	t.Run("should admit one unit of work at a time", func(t *testing.T) {
		store, _ := newStore(t, new(MockStateRecorder))
		factory := memory.NewUnitOfWorkFactory(store)

		holder := factory.Create()
		require.NoError(t, holder.Begin(t.Context()))

		ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
		defer cancel()
		waiter := factory.Create()
		assert.ErrorIs(t, waiter.Begin(ctx), context.DeadlineExceeded)

		require.NoError(t, holder.Rollback(t.Context()))
		require.NoError(t, waiter.Begin(t.Context()))
		require.NoError(t, waiter.Rollback(t.Context()))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		store, _ := newStore(t, new(MockStateRecorder))
		uow := memory.NewUnitOfWorkFactory(store).Create()

		require.NoError(t, uow.Begin(t.Context()))
		require.NoError(t, uow.Begin(t.Context()))
		require.NoError(t, uow.Rollback(t.Context()))
	})

	t.Run("should expose the store manager", func(t *testing.T) {
		store, manager := newStore(t, new(MockStateRecorder))
		uow := memory.NewUnitOfWorkFactory(store).Create()

		assert.Same(t, manager, uow.LogisticsManager())
	})
}

func TestStateRecorder(t *testing.T) {
	ctx := t.Context()
	recorder := memory.NewStateRecorder()

	_, err := recorder.Latest(ctx)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	summary := inventory.StateSummary{RecordedAt: fixedNow, Packages: 3}
	require.NoError(t, recorder.Record(ctx, summary))

	got, err := recorder.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}
