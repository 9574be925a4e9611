package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func committingUoW(t *testing.T, manager *services.LogisticsManager) (*MockUoW, *MockUoWFactory) {
	t.Helper()
	ctx := t.Context()
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LogisticsManager").Return(manager).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func rollingBackUoW(t *testing.T, manager *services.LogisticsManager) (*MockUoW, *MockUoWFactory) {
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

func TestLoadPackageToLineCommandHandler_Handle(t *testing.T) {
	t.Run("places a carton and commits", func(t *testing.T) {
		manager := newTestManager(t)
		line, _ := manager.CreateLine(1, decimal.NewFromInt(5), inventory.CountCapacity)
		carton, _ := manager.CreatePackage(inventory.Carton, "A", decimal.NewFromInt(2))
		cmd, _ := commands.NewLoadPackageToLineCommand(carton.ID(), line.ID())
		uow, factory := committingUoW(t, manager)

		h := commands.NewLoadPackageToLineCommandHandler(factory)
		placed, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, placed)
		assert.Len(t, line.Cartons(), 1)
		uow.AssertExpectations(t)
	})

	t.Run("rejection rolls back without error", func(t *testing.T) {
		manager := newTestManager(t)
		line, _ := manager.CreateLine(1, decimal.NewFromInt(5), inventory.CountCapacity)
		loose, _ := manager.CreatePackage(inventory.Loose, "A", decimal.NewFromInt(2))
		cmd, _ := commands.NewLoadPackageToLineCommand(loose.ID(), line.ID())
		uow, factory := rollingBackUoW(t, manager)

		h := commands.NewLoadPackageToLineCommandHandler(factory)
		placed, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.False(t, placed)
		uow.AssertExpectations(t)
	})

	t.Run("unknown package is not found", func(t *testing.T) {
		manager := newTestManager(t)
		line, _ := manager.CreateLine(1, decimal.NewFromInt(5), inventory.CountCapacity)
		cmd, _ := commands.NewLoadPackageToLineCommand(kernel.NewUUID(), line.ID())
		_, factory := rollingBackUoW(t, manager)

		h := commands.NewLoadPackageToLineCommandHandler(factory)
		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestLoadPackageToPalletCommandHandler_Handle(t *testing.T) {
	manager := newTestManager(t)
	pallet, _ := manager.CreatePallet("X", 1)
	first, _ := manager.CreatePackage(inventory.Loose, "X", decimal.NewFromInt(2))
	second, _ := manager.CreatePackage(inventory.Loose, "X", decimal.NewFromInt(2))

	cmd, _ := commands.NewLoadPackageToPalletCommand(first.ID(), pallet.ID())
	_, factory := committingUoW(t, manager)
	h := commands.NewLoadPackageToPalletCommandHandler(factory)
	placed, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.True(t, placed)

	cmd, _ = commands.NewLoadPackageToPalletCommand(second.ID(), pallet.ID())
	_, factory = rollingBackUoW(t, manager)
	h = commands.NewLoadPackageToPalletCommandHandler(factory)
	placed, err = h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.False(t, placed, "pallet is full")
}

func TestPalletCommandHandlers(t *testing.T) {
	manager := newTestManager(t)
	line, _ := manager.CreateLine(1, decimal.NewFromInt(100), inventory.WeightCapacity)
	pallet, _ := manager.CreatePallet("X", 5)

	loadCmd, _ := commands.NewLoadPalletToLineCommand(pallet.ID(), line.ID())
	_, factory := committingUoW(t, manager)
	loadHandler := commands.NewLoadPalletToLineCommandHandler(factory)
	placed, err := loadHandler.Handle(t.Context(), loadCmd)
	require.NoError(t, err)
	require.True(t, placed)

	offloadCmd, _ := commands.NewOffloadPalletCommand(pallet.ID())
	_, factory = committingUoW(t, manager)
	offloadHandler := commands.NewOffloadPalletCommandHandler(factory)
	removed, err := offloadHandler.Handle(t.Context(), offloadCmd)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, line.Pallets())

	_, factory = rollingBackUoW(t, manager)
	offloadHandler = commands.NewOffloadPalletCommandHandler(factory)
	removed, err = offloadHandler.Handle(t.Context(), offloadCmd)
	require.NoError(t, err)
	assert.False(t, removed, "pallet is no longer on a line")
}

func TestOffloadAndDiscardCommandHandlers(t *testing.T) {
	manager := newTestManager(t)
	line, _ := manager.CreateLine(1, decimal.NewFromInt(5), inventory.CountCapacity)
	carton, _ := manager.CreatePackage(inventory.Carton, "A", decimal.NewFromInt(2))
	require.True(t, manager.LoadPackageToLine(carton, line))

	offloadCmd, _ := commands.NewOffloadPackageCommand(carton.ID())
	_, factory := committingUoW(t, manager)
	offloadHandler := commands.NewOffloadPackageCommandHandler(factory)
	removed, err := offloadHandler.Handle(t.Context(), offloadCmd)
	require.NoError(t, err)
	assert.True(t, removed)

	discardCmd, _ := commands.NewDiscardPackageCommand(carton.ID())
	for range 2 {
		uow, factory := committingUoW(t, manager)
		discardHandler := commands.NewDiscardPackageCommandHandler(factory)
		discarded, err := discardHandler.Handle(t.Context(), discardCmd)
		require.NoError(t, err)
		assert.True(t, discarded)
		uow.AssertExpectations(t)
	}
	assert.True(t, carton.IsDiscarded())
}

func TestSettingsCommandHandlers(t *testing.T) {
	t.Run("unknown offload order is refused", func(t *testing.T) {
		manager := newTestManager(t)
		cmd, _ := commands.NewSetOffloadOrderCommand("fifo")
		_, factory := rollingBackUoW(t, manager)

		h := commands.NewSetOffloadOrderCommandHandler(factory)
		ok, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("newest first is accepted", func(t *testing.T) {
		manager := newTestManager(t)
		cmd, _ := commands.NewSetOffloadOrderCommand("newest_first")
		_, factory := committingUoW(t, manager)

		h := commands.NewSetOffloadOrderCommandHandler(factory)
		ok, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "newest_first", manager.OffloadOrder().String())
	})

	t.Run("mixed quality approval", func(t *testing.T) {
		manager := newTestManager(t)
		line, _ := manager.CreateLine(1, decimal.NewFromInt(5), inventory.CountCapacity)
		cmd, _ := commands.NewApproveMixedQualityCommand(line.ID(), 0)
		_, factory := committingUoW(t, manager)

		h := commands.NewApproveMixedQualityCommandHandler(factory)
		ok, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, inventory.DefaultMixedQualityTypes, line.MaxQualityTypes())
	})
}

func TestRecordStateCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordStateCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, commands.NewRecordStateCommand()))
	uow.AssertExpectations(t)
}
