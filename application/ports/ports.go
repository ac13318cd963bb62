// Package ports defines the interfaces the application layer consumes.
// Implementations live in infrastructure; the recommendation service only
// sees these contracts.
package ports

import "context"

// Match is one ranked result from a vector index query
type Match struct {
	ID       string
	Score    float64
	Metadata map[string]interface{}
}

// VectorIndex is a single logical similarity index. The service holds three
// instances: per-user memory, global trends, and the design catalog.
type VectorIndex interface {
	// Insert stores a vector with its metadata under the given id
	Insert(ctx context.Context, id string, vector []float32, metadata map[string]interface{}) error

	// Query returns up to topK matches ranked by descending similarity.
	// The filter object is forwarded verbatim to the index; nil means
	// unfiltered.
	Query(ctx context.Context, vector []float32, topK int, filter map[string]interface{}) ([]Match, error)
}

// Embedder converts text into a fixed-dimensionality vector, deterministic
// for identical input
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EventLogEntry is one append-only event log record
type EventLogEntry struct {
	EventID      string
	UserID       string
	SessionID    string
	EventType    string
	Payload      map[string]interface{}
	BusinessType string
	Device       string
	Timestamp    string
}

// EventLog is the durable append-only store of raw interaction events.
// It is written on every ingestion and never read by the engine.
type EventLog interface {
	Append(ctx context.Context, entry EventLogEntry) error
}

// Notification is a best-effort domain event emitted after an operation
// completes
type Notification struct {
	Type    string
	Subject string
	Detail  map[string]interface{}
}

// EventPublisher fans domain notifications out to interested consumers.
// Publish failures are logged, never surfaced to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, notifications []Notification) error
}

// MetricsRecorder counts operational events
type MetricsRecorder interface {
	Count(ctx context.Context, name string, value float64)
}

// Cache is a small read-through cache used to memoize embeddings
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
}
