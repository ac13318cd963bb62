// Package vector implements the VectorIndex port against a REST vector
// store exposing per-index insert and query routes.
package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/ports"
	apperrors "github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/errors"
)

// HTTPIndex talks to one named index on the vector store
type HTTPIndex struct {
	baseURL    string
	apiKey     string
	indexName  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPIndex creates a client bound to a single index
func NewHTTPIndex(baseURL, apiKey, indexName string, logger *zap.Logger) *HTTPIndex {
	return &HTTPIndex{
		baseURL:    baseURL,
		apiKey:     apiKey,
		indexName:  indexName,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type insertRequest struct {
	ID       string                 `json:"id"`
	Values   []float32              `json:"values"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type queryRequest struct {
	Vector         []float32              `json:"vector"`
	TopK           int                    `json:"topK"`
	Filter         map[string]interface{} `json:"filter,omitempty"`
	ReturnMetadata bool                   `json:"returnMetadata"`
}

type queryResponse struct {
	Matches []struct {
		ID       string                 `json:"id"`
		Score    float64                `json:"score"`
		Metadata map[string]interface{} `json:"metadata"`
	} `json:"matches"`
}

// Insert stores a vector with its metadata
func (i *HTTPIndex) Insert(ctx context.Context, id string, vector []float32, metadata map[string]interface{}) error {
	body := insertRequest{ID: id, Values: vector, Metadata: metadata}

	if err := i.post(ctx, "insert", body, nil); err != nil {
		return apperrors.NewIndexError("insert", err).WithDetails(map[string]interface{}{
			"index": i.indexName,
			"id":    id,
		})
	}

	i.logger.Debug("Vector inserted",
		zap.String("index", i.indexName),
		zap.String("id", id),
	)

	return nil
}

// Query returns up to topK matches ranked by descending similarity. The
// filter object is forwarded verbatim; the index owns its filter semantics.
func (i *HTTPIndex) Query(ctx context.Context, vector []float32, topK int, filter map[string]interface{}) ([]ports.Match, error) {
	body := queryRequest{
		Vector:         vector,
		TopK:           topK,
		Filter:         filter,
		ReturnMetadata: true,
	}

	var parsed queryResponse
	if err := i.post(ctx, "query", body, &parsed); err != nil {
		return nil, apperrors.NewIndexError("query", err).WithDetails(map[string]interface{}{
			"index": i.indexName,
		})
	}

	matches := make([]ports.Match, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		matches = append(matches, ports.Match{
			ID:       m.ID,
			Score:    m.Score,
			Metadata: m.Metadata,
		})
	}

	return matches, nil
}

func (i *HTTPIndex) post(ctx context.Context, action string, body interface{}, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/indexes/%s/%s", i.baseURL, i.indexName, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if i.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+i.apiKey)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("index %s %s returned %d: %s", i.indexName, action, resp.StatusCode, string(detail))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", action, err)
		}
	}

	return nil
}
