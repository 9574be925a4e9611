package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// State stores selectable with STATE_STORE.
const (
	StateStoreNone     = "none"
	StateStoreFile     = "file"
	StateStorePostgres = "postgres"
	StateStoreBadger   = "badger"
)

var ErrUnknownStateStore = errors.New("unknown state store")

type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	StateStore string `mapstructure:"STATE_STORE"`
	StateFile  string `mapstructure:"STATE_FILE"`
	BadgerPath string `mapstructure:"BADGER_PATH"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	SnapshotSchedule string `mapstructure:"SNAPSHOT_SCHEDULE"`
	ReportSchedule   string `mapstructure:"REPORT_SCHEDULE"`
}

var defaults = map[string]string{
	"HTTP_PORT":         "8080",
	"LOG_LEVEL":         "info",
	"STATE_STORE":       StateStoreFile,
	"STATE_FILE":        "warehouse_data.json",
	"BADGER_PATH":       "data/state",
	"DB_HOST":           "localhost",
	"DB_PORT":           "5432",
	"DB_USER":           "postgres",
	"DB_PASSWORD":       "",
	"DB_NAME":           "logistics",
	"DB_SSLMODE":        "disable",
	"SNAPSHOT_SCHEDULE": "0 */5 * * * *",
	"REPORT_SCHEDULE":   "0 0 * * * *",
}

// LoadConfig reads the configuration from the environment. Keys missing from
// the environment take their defaults; keys set to an empty value stay empty.
func LoadConfig(v *viper.Viper) (Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("read configuration: %w", err)
	}
	cfg.StateStore = strings.ToLower(strings.TrimSpace(cfg.StateStore))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	switch c.StateStore {
	case StateStoreNone, StateStorePostgres:
	case StateStoreFile:
		if c.StateFile == "" {
			errs = append(errs, errors.New("STATE_FILE is required for the file state store"))
		}
	case StateStoreBadger:
		if c.BadgerPath == "" {
			errs = append(errs, errors.New("BADGER_PATH is required for the badger state store"))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownStateStore, c.StateStore))
	}
	return errors.Join(errs...)
}

// Level parses LOG_LEVEL as a slog level name.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}
