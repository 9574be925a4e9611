// Package postgres opens the GORM connection used by the relational state
// summary store. The inventory itself is never stored in PostgreSQL; only the
// summaries written by staterepo are.
//
// Example:
//
//	db, err := postgres.Open(postgres.DSN{
//	    Host: "localhost", Port: "5432", User: "app", Password: "secret",
//	    Name: "logistics", SSLMode: "disable",
//	})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN holds the connection settings read from configuration.
type DSN struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DSN) String() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Open connects with GORM's SQL logging silenced; the service logs through slog.
func Open(dsn DSN) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn.String()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
