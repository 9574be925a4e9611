package cmd

import (
	"context"
	"fmt"
	"log/slog"

	badgerrepo "logistics/internal/adapters/out/badger/staterepo"
	filerepo "logistics/internal/adapters/out/file/staterepo"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/postgres"
	pgrepo "logistics/internal/adapters/out/postgres/staterepo"
	"logistics/internal/core/ports"
)

// OpenStateRecorder builds the recorder selected by STATE_STORE. The returned
// close function releases its connection or database files.
func OpenStateRecorder(ctx context.Context, cfg Config, logger *slog.Logger) (ports.StateRecorder, func() error, error) {
	noop := func() error { return nil }
	logger = logger.With("component", "StateStore", "store", cfg.StateStore)

	switch cfg.StateStore {
	case StateStoreNone:
		logger.Info("state summaries are kept in memory only")
		return memory.NewStateRecorder(), noop, nil

	case StateStoreFile:
		repo, err := filerepo.NewFileStateRepository(cfg.StateFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("recording state summaries to file", "path", cfg.StateFile)
		return repo, noop, nil

	case StateStoreBadger:
		db, err := badgerrepo.Open(cfg.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("recording state summaries to badger", "path", cfg.BadgerPath)
		return badgerrepo.NewBadgerStateRepository(db), db.Close, nil

	case StateStorePostgres:
		db, err := postgres.Open(postgres.DSN{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Name:     cfg.DBName,
			SSLMode:  cfg.DBSslMode,
		})
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("postgres handle: %w", err)
		}
		repo := pgrepo.NewGormStateRepository(db)
		if err = repo.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		logger.Info("recording state summaries to postgres", "host", cfg.DBHost, "db", cfg.DBName)
		return repo, sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStateStore, cfg.StateStore)
	}
}
