package servers_test

import (
	"testing"

	"logistics/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	t.Run("should load a valid document", func(t *testing.T) {
		doc, err := servers.GetSwagger()
		require.NoError(t, err)

		assert.NoError(t, doc.Validate(t.Context()))
	})

	t.Run("should describe every registered route", func(t *testing.T) {
		doc, err := servers.GetSwagger()
		require.NoError(t, err)

		for _, path := range []string{
			"/api/v1/health",
			"/api/v1/warehouses",
			"/api/v1/warehouses/{id}/snapshot",
			"/api/v1/lines/{id}/approve-mixed",
			"/api/v1/packages/search",
			"/api/v1/pallets/{id}/load-to-line",
			"/api/v1/settings/offload-order",
			"/api/v1/state/latest",
		} {
			assert.NotNil(t, doc.Paths.Find(path), path)
		}
	})
}
