package jobs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStateRecordHandler struct {
	mock.Mock
}

func (m *MockStateRecordHandler) Handle(ctx context.Context, cmd commands.RecordStateCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockDashboardHandler struct {
	mock.Mock
}

func (m *MockDashboardHandler) Handle(
	ctx context.Context,
	query queries.GetDashboardQuery,
) (queries.DashboardResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.DashboardResponse), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStateSnapshotJob(t *testing.T) {
	t.Run("should record a state summary on each run", func(t *testing.T) {
		handler := new(MockStateRecordHandler)
		handler.On("Handle", mock.Anything, commands.NewRecordStateCommand()).Return(nil).Twice()
		job := NewStateSnapshotJob(handler, "*/5 * * * * *", discardLogger())

		job.run()
		job.run()

		handler.AssertExpectations(t)
	})

	t.Run("should log a failed run", func(t *testing.T) {
		var buf bytes.Buffer
		handler := new(MockStateRecordHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(errors.New("store is down")).Once()
		job := NewStateSnapshotJob(handler, "*/5 * * * * *", slog.New(slog.NewTextHandler(&buf, nil)))

		job.run()

		assert.Contains(t, buf.String(), "State snapshot job failed")
		assert.Contains(t, buf.String(), "store is down")
	})

	t.Run("should refuse an invalid schedule", func(t *testing.T) {
		job := NewStateSnapshotJob(new(MockStateRecordHandler), "every now and then", discardLogger())

		assert.Error(t, job.Start())
	})
}

func TestUtilizationReportJob(t *testing.T) {
	t.Run("should log the dashboard totals", func(t *testing.T) {
		var buf bytes.Buffer
		handler := new(MockDashboardHandler)
		handler.On("Handle", mock.Anything, queries.NewGetDashboardQuery()).Return(queries.DashboardResponse{
			Statistics: services.Statistics{
				Warehouses:            2,
				Lines:                 3,
				TotalCapacity:         decimal.NewFromInt(100),
				UsedCapacity:          decimal.NewFromInt(25),
				UtilizationPercentage: 25,
			},
			OffloadOrder: "oldest_first",
		}, nil).Once()
		job := NewUtilizationReportJob(handler, "0 * * * * *", slog.New(slog.NewTextHandler(&buf, nil)))

		job.run()

		handler.AssertExpectations(t)
		assert.Contains(t, buf.String(), "Utilization report")
		assert.Contains(t, buf.String(), "warehouses=2")
		assert.Contains(t, buf.String(), "used_capacity=25")
	})

	t.Run("should log a failed read", func(t *testing.T) {
		var buf bytes.Buffer
		handler := new(MockDashboardHandler)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(queries.DashboardResponse{}, errors.New("busy")).Once()
		job := NewUtilizationReportJob(handler, "0 * * * * *", slog.New(slog.NewTextHandler(&buf, nil)))

		job.run()

		assert.Contains(t, buf.String(), "Utilization report job failed")
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should skip jobs without a schedule", func(t *testing.T) {
		jm := NewJobManager(Schedules{Snapshot: "*/5 * * * * *"},
			new(MockStateRecordHandler), new(MockDashboardHandler), discardLogger())

		require.Len(t, jm.jobs, 1)
		assert.Equal(t, "state snapshot job", jm.jobs[0].name)
	})

	t.Run("should start and stop all jobs", func(t *testing.T) {
		jm := NewJobManager(Schedules{Snapshot: "0 0 0 1 1 *", Report: "0 0 0 1 1 *"},
			new(MockStateRecordHandler), new(MockDashboardHandler), discardLogger())

		require.NoError(t, jm.StartAll())
		assert.Len(t, jm.started, 2)

		jm.StopAll()
		assert.Empty(t, jm.started)
	})

	t.Run("should stop started jobs when a later one fails", func(t *testing.T) {
		jm := NewJobManager(Schedules{Snapshot: "0 0 0 1 1 *", Report: "not a schedule"},
			new(MockStateRecordHandler), new(MockDashboardHandler), discardLogger())

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "utilization report job")
		assert.Empty(t, jm.started)
	})
}
