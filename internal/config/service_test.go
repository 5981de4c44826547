package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceConfig_ParsePlanFees(t *testing.T) {
	t.Run("parses decimal fees", func(t *testing.T) {
		cfg := ServiceConfig{PlanFees: map[string]string{
			"basic":   "29.99",
			"premium": "79.99",
		}}

		fees, err := cfg.ParsePlanFees()

		require.NoError(t, err)
		assert.True(t, fees["basic"].Equal(decimal.RequireFromString("29.99")))
		assert.True(t, fees["premium"].Equal(decimal.RequireFromString("79.99")))
	})

	t.Run("rejects malformed fee", func(t *testing.T) {
		cfg := ServiceConfig{PlanFees: map[string]string{"basic": "lots"}}

		_, err := cfg.ParsePlanFees()

		assert.Error(t, err)
	})

	t.Run("rejects negative fee", func(t *testing.T) {
		cfg := ServiceConfig{PlanFees: map[string]string{"basic": "-1"}}

		_, err := cfg.ParsePlanFees()

		assert.Error(t, err)
	})

	t.Run("empty map stays empty", func(t *testing.T) {
		fees, err := ServiceConfig{}.ParsePlanFees()

		require.NoError(t, err)
		assert.Empty(t, fees)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "gym",
		Password: "secret",
		DBName:   "gym",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "TimeZone=UTC")
}
