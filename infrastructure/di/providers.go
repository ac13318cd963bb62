package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/ports"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/recommendation"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/infrastructure/config"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/infrastructure/embedding"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/infrastructure/messaging/eventbridge"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/infrastructure/persistence/dynamodb"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/infrastructure/vector"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/observability"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/ratelimit"
)

// ProvideLogger creates a new logger instance honoring LOG_LEVEL
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideEventLog creates the append-only event log
func ProvideEventLog(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.EventLog {
	return dynamodb.NewEventLog(client, cfg.EventLogTable, logger)
}

// ProvideEventPublisher creates the domain notification publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the metrics recorder. Metrics are disabled outside
// environments that opt in.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) ports.MetricsRecorder {
	if !cfg.EnableMetrics {
		return observability.NoopMetrics{}
	}
	namespace := fmt.Sprintf("Sitebuilder/Personalization/%s", cfg.Environment)
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideEmbeddingCache creates the cache memoizing embedding calls
func ProvideEmbeddingCache() ports.Cache {
	return NewInMemoryCache()
}

// ProvideEmbedder creates the embedding provider client
func ProvideEmbedder(cfg *config.Config, cache ports.Cache, logger *zap.Logger) ports.Embedder {
	return embedding.NewClient(
		cfg.EmbeddingEndpoint,
		cfg.EmbeddingAPIKey,
		cfg.EmbeddingModel,
		cfg.EmbeddingDimension,
		cache,
		logger,
	)
}

// VectorIndexes bundles the three logical indices so they can be injected
// as one value
type VectorIndexes struct {
	User    ports.VectorIndex
	Trends  ports.VectorIndex
	Catalog ports.VectorIndex
}

// ProvideVectorIndexes creates clients for the three configured indices
func ProvideVectorIndexes(cfg *config.Config, logger *zap.Logger) VectorIndexes {
	return VectorIndexes{
		User:    vector.NewHTTPIndex(cfg.VectorStoreEndpoint, cfg.VectorStoreAPIKey, cfg.UserIndexName, logger),
		Trends:  vector.NewHTTPIndex(cfg.VectorStoreEndpoint, cfg.VectorStoreAPIKey, cfg.TrendsIndexName, logger),
		Catalog: vector.NewHTTPIndex(cfg.VectorStoreEndpoint, cfg.VectorStoreAPIKey, cfg.CatalogIndexName, logger),
	}
}

// ProvideRecommendationService wires the orchestrator
func ProvideRecommendationService(
	embedder ports.Embedder,
	indexes VectorIndexes,
	eventLog ports.EventLog,
	publisher ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *recommendation.Service {
	return recommendation.NewService(
		embedder,
		indexes.User,
		indexes.Trends,
		indexes.Catalog,
		eventLog,
		publisher,
		metrics,
		logger,
	)
}

// ProvideRateLimiter creates the per-client-IP request limiter
func ProvideRateLimiter(cfg *config.Config) *ratelimit.IPRateLimiter {
	return ratelimit.NewIPRateLimiter(cfg.RateLimitPerMinute)
}
