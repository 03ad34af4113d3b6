package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "stockwatch", cfg.Mongo.Database)
	assert.Equal(t, "testsecret", cfg.JWT.Secret)
	assert.Equal(t, "https://api.twelvedata.com", cfg.MarketData.BaseURL)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "3000")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "stocks")
	t.Setenv("TWELVE_BASE_URL", "http://localhost:9999")
	t.Setenv("TWELVE_KEY", "apikey")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "stocks", cfg.Mongo.Database)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "http://localhost:9999", cfg.MarketData.BaseURL)
	assert.Equal(t, "apikey", cfg.MarketData.APIKey)
}

func TestNew_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := New()
	require.Error(t, err)
}
