package postgres_test

import (
	"testing"

	"logistics/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
)

func TestDSN_String(t *testing.T) {
	dsn := postgres.DSN{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		Name:     "logistics",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=logistics sslmode=disable", dsn.String())
}
