package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LogisticsManager() *services.LogisticsManager {
	args := m.Called()
	return args.Get(0).(*services.LogisticsManager)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() queries.UoW {
	args := m.Called()
	return args.Get(0).(queries.UoW)
}

type MockStateRecorder struct{ mock.Mock }

func (m *MockStateRecorder) Record(ctx context.Context, summary inventory.StateSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockStateRecorder) Latest(ctx context.Context) (inventory.StateSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(inventory.StateSummary), args.Error(1)
}

// tickingClock advances one second per call so creation times are distinct.
func tickingClock() services.Clock {
	current := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newTestManager(t *testing.T) *services.LogisticsManager {
	t.Helper()
	manager, err := services.NewLogisticsManager(
		inventory.NewRegistry(),
		tickingClock(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)
	return manager
}

// readingUoW expects exactly one read: Begin, LogisticsManager, Rollback.
func readingUoW(t *testing.T, manager *services.LogisticsManager) (*MockUoW, *MockUoWFactory) {
	t.Helper()
	ctx := t.Context()
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LogisticsManager").Return(manager).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}
