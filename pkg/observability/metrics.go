// Package observability provides operational metrics reporting.
package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// Metrics publishes counters to CloudWatch. Failures are logged and
// swallowed; metrics never fail a request.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
	logger    *zap.Logger
}

// NewMetrics creates a CloudWatch metrics recorder
func NewMetrics(namespace string, client *cloudwatch.Client, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// Count records a counter metric
func (m *Metrics) Count(ctx context.Context, name string, value float64) {
	if m.client == nil {
		return
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name),
				Value:      aws.Float64(value),
				Unit:       types.StandardUnitCount,
				Timestamp:  aws.Time(time.Now().UTC()),
			},
		},
	})
	if err != nil {
		m.logger.Warn("Failed to publish metric",
			zap.String("metric", name),
			zap.Error(err),
		)
	}
}

// NoopMetrics discards all metrics. Used when metrics are disabled.
type NoopMetrics struct{}

// Count implements the recorder interface and does nothing
func (NoopMetrics) Count(context.Context, string, float64) {}
