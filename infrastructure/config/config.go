package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	EventLogTable string
	EventBusName  string

	// Vector index names
	UserIndexName    string
	TrendsIndexName  string
	CatalogIndexName string

	// Vector store endpoint
	VectorStoreEndpoint string
	VectorStoreAPIKey   string

	// Embedding provider
	EmbeddingEndpoint  string
	EmbeddingAPIKey    string
	EmbeddingModel     string
	EmbeddingDimension int

	// Rate limiting
	RateLimitPerMinute int

	// Logging and features
	LogLevel      string
	EnableMetrics bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		EventLogTable: getEnv("EVENT_LOG_TABLE", "personalization-events"),
		EventBusName:  getEnv("EVENT_BUS_NAME", "personalization-events-bus"),

		UserIndexName:    getEnv("USER_INDEX_NAME", "user-memory"),
		TrendsIndexName:  getEnv("TRENDS_INDEX_NAME", "global-trends"),
		CatalogIndexName: getEnv("CATALOG_INDEX_NAME", "design-catalog"),

		VectorStoreEndpoint: getEnv("VECTOR_STORE_ENDPOINT", "http://localhost:9200"),
		VectorStoreAPIKey:   getEnv("VECTOR_STORE_API_KEY", ""),

		EmbeddingEndpoint:  getEnv("EMBEDDING_ENDPOINT", "http://localhost:8090"),
		EmbeddingAPIKey:    getEnv("EMBEDDING_API_KEY", ""),
		EmbeddingModel:     getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingDimension: getEnvInt("EMBEDDING_DIMENSION", 1536),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.EventLogTable == "" {
			return fmt.Errorf("EVENT_LOG_TABLE is required")
		}
		if c.VectorStoreEndpoint == "" {
			return fmt.Errorf("VECTOR_STORE_ENDPOINT is required")
		}
		if c.EmbeddingEndpoint == "" {
			return fmt.Errorf("EMBEDDING_ENDPOINT is required")
		}
		if c.EmbeddingAPIKey == "" {
			return fmt.Errorf("EMBEDDING_API_KEY is required in production")
		}
	}

	if c.EmbeddingDimension <= 0 {
		return fmt.Errorf("EMBEDDING_DIMENSION must be positive")
	}

	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
