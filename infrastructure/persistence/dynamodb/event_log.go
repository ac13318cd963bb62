// Package dynamodb implements the durable append-only event log.
package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/ports"
	apperrors "github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/errors"
)

// EventLog stores raw interaction events keyed by event id. Records are
// write-once; the engine never reads them back.
type EventLog struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// eventRecord is the DynamoDB shape of one logged event
type eventRecord struct {
	PK           string                 `dynamodbav:"PK"` // EVENT#<event_id>
	SK           string                 `dynamodbav:"SK"` // TS#<timestamp>
	EventID      string                 `dynamodbav:"EventID"`
	UserID       string                 `dynamodbav:"UserID"`
	SessionID    string                 `dynamodbav:"SessionID,omitempty"`
	EventType    string                 `dynamodbav:"EventType"`
	Payload      map[string]interface{} `dynamodbav:"Payload,omitempty"`
	BusinessType string                 `dynamodbav:"BusinessType,omitempty"`
	Device       string                 `dynamodbav:"Device,omitempty"`
	Timestamp    string                 `dynamodbav:"Timestamp"`
}

// NewEventLog creates a DynamoDB-backed event log
func NewEventLog(client *dynamodb.Client, tableName string, logger *zap.Logger) *EventLog {
	return &EventLog{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Append writes one event record. The conditional put keeps the log
// append-only: an id collision fails instead of overwriting.
func (l *EventLog) Append(ctx context.Context, entry ports.EventLogEntry) error {
	record := eventRecord{
		PK:           "EVENT#" + entry.EventID,
		SK:           "TS#" + entry.Timestamp,
		EventID:      entry.EventID,
		UserID:       entry.UserID,
		SessionID:    entry.SessionID,
		EventType:    entry.EventType,
		Payload:      entry.Payload,
		BusinessType: entry.BusinessType,
		Device:       entry.Device,
		Timestamp:    entry.Timestamp,
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return apperrors.NewLogWriteError("marshal", err)
	}

	cond := expression.AttributeNotExists(expression.Name("PK"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return apperrors.NewLogWriteError("build condition", err)
	}

	_, err = l.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(l.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return apperrors.NewLogWriteError("append", err).WithDetails(map[string]interface{}{
			"event_id": entry.EventID,
		})
	}

	l.logger.Debug("Event logged",
		zap.String("event_id", entry.EventID),
		zap.String("event_type", entry.EventType),
	)

	return nil
}
