package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:        "development",
		EmbeddingDimension: 1536,
		RateLimitPerMinute: 60,
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_RejectsNonPositiveRateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimitPerMinute = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_PER_MINUTE")
}

func TestValidate_RejectsNonPositiveDimension(t *testing.T) {
	cfg := validConfig()
	cfg.EmbeddingDimension = -1

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMBEDDING_DIMENSION")
}

func TestValidate_ProductionRequiresEmbeddingKey(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = "production"
	cfg.EventLogTable = "events"
	cfg.VectorStoreEndpoint = "https://vectors.example.com"
	cfg.EmbeddingEndpoint = "https://embeddings.example.com"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMBEDDING_API_KEY")
}
