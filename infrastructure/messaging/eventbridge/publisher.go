// Package eventbridge fans domain notifications out to an EventBridge bus.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/ports"
)

const source = "sitebuilder.personalization"

// maxBatchSize is the PutEvents limit
const maxBatchSize = 10

// Publisher implements the EventPublisher port on EventBridge
type Publisher struct {
	client  *eventbridge.Client
	busName string
	logger  *zap.Logger
}

// NewPublisher creates an EventBridge publisher
func NewPublisher(client *eventbridge.Client, busName string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:  client,
		busName: busName,
		logger:  logger,
	}
}

// Publish sends the notifications in PutEvents batches. Entries that fail
// are reported as one aggregate error; callers treat publishing as
// best-effort.
func (p *Publisher) Publish(ctx context.Context, notifications []ports.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	entries := make([]types.PutEventsRequestEntry, 0, len(notifications))
	for _, n := range notifications {
		detail, err := json.Marshal(map[string]interface{}{
			"subject": n.Subject,
			"detail":  n.Detail,
		})
		if err != nil {
			return fmt.Errorf("marshal notification %s: %w", n.Type, err)
		}

		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.busName),
			Source:       aws.String(source),
			DetailType:   aws.String(n.Type),
			Detail:       aws.String(string(detail)),
		})
	}

	var failed int64
	for i := 0; i < len(entries); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(entries) {
			end = len(entries)
		}

		out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
			Entries: entries[i:end],
		})
		if err != nil {
			return fmt.Errorf("put events: %w", err)
		}

		failed += int64(out.FailedEntryCount)
		for _, entry := range out.Entries {
			if entry.ErrorCode != nil {
				p.logger.Warn("Notification entry rejected",
					zap.String("error_code", aws.ToString(entry.ErrorCode)),
					zap.String("error_message", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d notification entries failed", failed)
	}

	p.logger.Debug("Notifications published",
		zap.Int("count", len(notifications)),
		zap.String("bus", p.busName),
	)

	return nil
}
