package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/ports"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/recommendation"
)

type stubEmbedder struct{}

func (stubEmbedder) Embed(context.Context, string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

type stubIndex struct {
	inserted []string
	matches  []ports.Match
}

func (s *stubIndex) Insert(_ context.Context, id string, _ []float32, _ map[string]interface{}) error {
	s.inserted = append(s.inserted, id)
	return nil
}

func (s *stubIndex) Query(context.Context, []float32, int, map[string]interface{}) ([]ports.Match, error) {
	return s.matches, nil
}

type stubEventLog struct{}

func (stubEventLog) Append(context.Context, ports.EventLogEntry) error { return nil }

type stubPublisher struct{}

func (stubPublisher) Publish(context.Context, []ports.Notification) error { return nil }

type stubMetrics struct{}

func (stubMetrics) Count(context.Context, string, float64) {}

func newTestHandler(catalog *stubIndex) *PersonalizationHandler {
	service := recommendation.NewService(
		stubEmbedder{},
		&stubIndex{},
		&stubIndex{},
		catalog,
		stubEventLog{},
		stubPublisher{},
		stubMetrics{},
		zap.NewNop(),
	)
	return NewPersonalizationHandler(service, zap.NewNop())
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestIngestDesignSample_Success(t *testing.T) {
	catalog := &stubIndex{}
	h := newTestHandler(catalog)

	rec := postJSON(t, h.IngestDesignSample, `{
		"id": "t1",
		"type": "template",
		"template_id": "tpl-001",
		"license_policy": "internal_ok"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "t1", body["design_sample_id"])
	assert.Equal(t, []string{"t1"}, catalog.inserted)
}

func TestIngestDesignSample_ValidationError(t *testing.T) {
	h := newTestHandler(&stubIndex{})

	rec := postJSON(t, h.IngestDesignSample, `{"type": "template"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "id is required", body["error"])
}

func TestIngestDesignSample_MalformedJSON(t *testing.T) {
	h := newTestHandler(&stubIndex{})

	rec := postJSON(t, h.IngestDesignSample, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid JSON", body["error"])
}

func TestIngestEvent_Success(t *testing.T) {
	h := newTestHandler(&stubIndex{})

	rec := postJSON(t, h.IngestEvent, `{
		"user_id": "u1",
		"event_type": "like",
		"payload": {"tags": ["Modern"]}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Contains(t, body["event_id"], "evt_")
}

func TestIngestEvent_MissingUserID(t *testing.T) {
	h := newTestHandler(&stubIndex{})

	rec := postJSON(t, h.IngestEvent, `{"event_type": "like"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "user_id is required")
}

func TestRecommend_Success(t *testing.T) {
	catalog := &stubIndex{
		matches: []ports.Match{
			{ID: "t1", Score: 0.9, Metadata: map[string]interface{}{"type": "template"}},
		},
	}
	h := newTestHandler(catalog)

	rec := postJSON(t, h.Recommend, `{"user_id": "u1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])

	next, ok := body["next"].([]interface{})
	require.True(t, ok)
	require.Len(t, next, 1)
	first := next[0].(map[string]interface{})
	assert.Equal(t, "t1", first["design_id"])

	questions, ok := body["questions"].([]interface{})
	require.True(t, ok)
	require.Len(t, questions, 2)
	assert.Equal(t, "Which of these do you prefer and why?", questions[0])

	assert.Nil(t, body["upsell"])
}

func TestRecommend_MissingUserID(t *testing.T) {
	h := newTestHandler(&stubIndex{})

	rec := postJSON(t, h.Recommend, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
