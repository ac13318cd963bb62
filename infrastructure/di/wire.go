//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/recommendation"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/infrastructure/config"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/ratelimit"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Service     *recommendation.Service
	RateLimiter *ratelimit.IPRateLimiter
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideEventLog,
	ProvideEventPublisher,
	ProvideMetrics,
	ProvideEmbeddingCache,
	ProvideEmbedder,
	ProvideVectorIndexes,
	ProvideRecommendationService,
	ProvideRateLimiter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
