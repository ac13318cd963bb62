// Package embedding implements the Embedder port against an OpenAI-compatible
// embeddings endpoint.
package embedding

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

const maxAttempts = 3

// Client calls a POST /v1/embeddings endpoint and enforces a fixed
// dimensionality on the returned vectors
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	dimension  int
	httpClient *http.Client
	cache      ports.Cache
	logger     *zap.Logger
}

// NewClient creates an embedding client. cache may be nil to disable
// memoization.
func NewClient(endpoint, apiKey, model string, dimension int, cache ports.Cache, logger *zap.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
		dimension:  dimension,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      cache,
		logger:     logger,
	}
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// Embed converts text into a vector, retrying transient provider failures
// with exponential backoff. Identical input yields identical output, so
// results are safe to memoize.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(text); ok {
			if vector, ok := cached.([]float32); ok {
				return vector, nil
			}
		}
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(200*(1<<attempt)) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, apperrors.NewEmbeddingError("embedding request cancelled", ctx.Err())
			}
		}

		vector, err := c.embedOnce(ctx, text)
		if err == nil {
			if c.cache != nil {
				c.cache.Set(text, vector)
			}
			return vector, nil
		}

		lastErr = err
		c.logger.Warn("Embedding attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	return nil, apperrors.NewEmbeddingError("embedding provider failed", lastErr)
}

func (c *Client) embedOnce(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embeddingRequest{
		Model: c.model,
		Input: []string{text},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("embedding endpoint returned %d: %s", resp.StatusCode, string(raw))
	}

	var parsed embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}

	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("embedding response contained no vectors")
	}

	vector := parsed.Data[0].Embedding
	if len(vector) != c.dimension {
		return nil, fmt.Errorf("embedding dimension mismatch: got %d, want %d", len(vector), c.dimension)
	}

	return vector, nil
}
