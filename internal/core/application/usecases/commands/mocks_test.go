package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/commands"
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

func (m *MockUoW) Commit(ctx context.Context) error {
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

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newTestManager(t *testing.T) *services.LogisticsManager {
	t.Helper()
	manager, err := services.NewLogisticsManager(
		inventory.NewRegistry(),
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)
	return manager
}
