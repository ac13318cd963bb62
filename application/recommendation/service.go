package recommendation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/ports"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/domain/personalization"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/utils"
)

// Service orchestrates the three personalization operations. It holds no
// per-request state; everything durable lives in the indices and the event
// log.
type Service struct {
	embedder     ports.Embedder
	userIndex    ports.VectorIndex
	trendsIndex  ports.VectorIndex
	catalogIndex ports.VectorIndex
	eventLog     ports.EventLog
	publisher    ports.EventPublisher
	metrics      ports.MetricsRecorder
	logger       *zap.Logger
}

// NewService creates the recommendation service
func NewService(
	embedder ports.Embedder,
	userIndex ports.VectorIndex,
	trendsIndex ports.VectorIndex,
	catalogIndex ports.VectorIndex,
	eventLog ports.EventLog,
	publisher ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		embedder:     embedder,
		userIndex:    userIndex,
		trendsIndex:  trendsIndex,
		catalogIndex: catalogIndex,
		eventLog:     eventLog,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// RecommendRequest is the input to Recommend. Filters are opaque and
// forwarded verbatim to the catalog index.
type RecommendRequest struct {
	UserID  string
	Prompt  string
	Filters map[string]interface{}
}

// Recommendation is the assembled response payload
type Recommendation struct {
	Next      []personalization.Candidate `json:"next"`
	Questions [2]string                   `json:"questions"`
	Upsell    *UpsellOffer                `json:"upsell"`
}

// IngestDesignSample validates a raw catalog record, embeds its rendered
// text, and inserts it into the design-catalog index. Validation fails fast
// before any side effect.
func (s *Service) IngestDesignSample(ctx context.Context, raw map[string]interface{}) (string, error) {
	sample, err := personalization.ParseDesignSample(raw)
	if err != nil {
		return "", err
	}

	vector, err := s.embedder.Embed(ctx, sample.EmbeddingText())
	if err != nil {
		return "", err
	}

	if err := s.catalogIndex.Insert(ctx, sample.ID, vector, sample.Metadata()); err != nil {
		return "", err
	}

	s.metrics.Count(ctx, "SampleIngested", 1)
	s.notify(ctx, "sample.ingested", sample.ID, map[string]interface{}{
		"type":           string(sample.Type),
		"license_policy": string(sample.LicensePolicy),
	})

	s.logger.Info("Design sample ingested",
		zap.String("sample_id", sample.ID),
		zap.String("type", string(sample.Type)),
		zap.Int("tags", len(sample.Tags)),
	)

	return sample.ID, nil
}

// IngestEvent records an interaction event: derive tags, build the memory
// sentence, embed it, append to the event log, write the per-user memory
// record, and mirror tracked event types into the global-trends index.
// Unknown event types are recorded but never promoted to trends.
func (s *Service) IngestEvent(ctx context.Context, event personalization.InteractionEvent) (string, error) {
	eventID := newID("evt")
	timestamp := utils.NowRFC3339()

	tags := personalization.DeriveTags(event.EventType, event.Payload)
	sentence := personalization.BuildMemorySentence(event.EventType, tags, event.Payload)

	vector, err := s.embedder.Embed(ctx, sentence)
	if err != nil {
		return "", err
	}

	if err := s.eventLog.Append(ctx, ports.EventLogEntry{
		EventID:      eventID,
		UserID:       event.UserID,
		SessionID:    event.SessionID,
		EventType:    event.EventType,
		Payload:      event.Payload,
		BusinessType: event.BusinessType,
		Device:       event.Device,
		Timestamp:    timestamp,
	}); err != nil {
		return "", err
	}

	record := &personalization.MemoryRecord{
		UserID:       event.UserID,
		EventID:      eventID,
		EventType:    event.EventType,
		Sentence:     sentence,
		Vector:       vector,
		Tags:         tags,
		BusinessType: event.BusinessType,
		Device:       event.Device,
		Timestamp:    timestamp,
	}

	if err := s.userIndex.Insert(ctx, record.ID(), vector, record.Metadata()); err != nil {
		return "", err
	}

	if personalization.IsTrackedEventType(event.EventType) {
		if err := s.trendsIndex.Insert(ctx, eventID, vector, record.TrendsMetadata()); err != nil {
			return "", err
		}
	}

	s.metrics.Count(ctx, "EventIngested", 1)
	s.notify(ctx, "event.recorded", eventID, map[string]interface{}{
		"event_type": event.EventType,
		"tracked":    personalization.IsTrackedEventType(event.EventType),
	})

	s.logger.Info("Event ingested",
		zap.String("event_id", eventID),
		zap.String("event_type", event.EventType),
		zap.Int("tags", len(tags)),
	)

	return eventID, nil
}

// Recommend assembles a recommendation: embed the prompt, fan out to the
// three indices, diversity-select catalog candidates, generate the question
// pair, and evaluate the upsell heuristic over the combined user and trend
// signals.
func (s *Service) Recommend(ctx context.Context, req RecommendRequest) (*Recommendation, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = fmt.Sprintf("website design preferences for user %s", req.UserID)
	}

	vector, err := s.embedder.Embed(ctx, prompt)
	if err != nil {
		return nil, err
	}

	recalled, err := s.recall(ctx, req.UserID, vector, req.Filters)
	if err != nil {
		return nil, err
	}

	candidates := make([]personalization.Candidate, 0, len(recalled.catalog))
	for _, m := range recalled.catalog {
		candidates = append(candidates, personalization.Candidate{
			DesignID: m.ID,
			Score:    m.Score,
			Meta:     m.Metadata,
		})
	}

	selected := SelectDiverse(candidates, defaultSelectionLimit)

	signals := append(append([]ports.Match{}, recalled.user...), recalled.trends...)

	var upsell *UpsellOffer
	if ShouldOfferUpsell(signals) {
		upsell = filterablePortfolioOffer
		s.metrics.Count(ctx, "UpsellTriggered", 1)
	}

	result := &Recommendation{
		Next:      selected,
		Questions: [2]string{FirstQuestion, ComparisonQuestion(selected)},
		Upsell:    upsell,
	}

	s.metrics.Count(ctx, "RecommendationServed", 1)
	s.notify(ctx, "recommendation.served", req.UserID, map[string]interface{}{
		"candidates": len(selected),
		"upsell":     upsell != nil,
	})

	s.logger.Info("Recommendation served",
		zap.String("user_id", req.UserID),
		zap.Int("candidates", len(selected)),
		zap.Bool("upsell", upsell != nil),
	)

	return result, nil
}

// notify publishes a best-effort domain notification. Failures are logged
// and never fail the request.
func (s *Service) notify(ctx context.Context, eventType, subject string, detail map[string]interface{}) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.Publish(ctx, []ports.Notification{{
		Type:    eventType,
		Subject: subject,
		Detail:  detail,
	}})
	if err != nil {
		s.logger.Warn("Failed to publish notification",
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}

// newID returns a prefixed random identifier
func newID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}
