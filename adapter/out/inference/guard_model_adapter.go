// Package inference provides classifier adapters for the gambling-spam
// detection port: the bespoke model service, and an OpenAI-backed fallback.
package inference

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"guard_server/core/domain"
	"guard_server/pkg/httputil"
	"guard_server/pkg/resilience"
)

// ModelAdapter calls the spam model service's predict endpoint.
type ModelAdapter struct {
	baseURL string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
}

// NewModelAdapter creates an adapter for the model service at baseURL.
// A non-positive timeout keeps the inference client's default.
func NewModelAdapter(baseURL string, timeout time.Duration) *ModelAdapter {
	client := httputil.InferenceClient()
	if timeout > 0 {
		cfg := httputil.InferenceClientConfig()
		cfg.ResponseTimeout = timeout
		client = httputil.NewOptimizedClient(cfg)
	}
	return &ModelAdapter{
		baseURL: baseURL,
		client:  client,
		cb:      resilience.NewBreaker("inference-api"),
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	IsGambling bool    `json:"is_gambling"`
	Confidence string  `json:"confidence"`
	RawScore   float64 `json:"raw_score"`
}

// Classify posts one text to /predict and maps the response verbatim.
// Empty text is forwarded, not rejected. Any transport failure or
// non-success status yields an error and no partial result.
func (a *ModelAdapter) Classify(ctx context.Context, text string) (*domain.Classification, error) {
	body, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode predict request: %w", err)
	}

	result, err := a.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/predict", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := a.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("inference request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			// Body kept short; upstream error pages can be large.
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("inference service returned %d: %s", resp.StatusCode, payload)
		}

		var pr predictResponse
		if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
			return nil, fmt.Errorf("failed to decode predict response: %w", err)
		}
		return &pr, nil
	})
	if err != nil {
		return nil, err
	}

	pr := result.(*predictResponse)
	return &domain.Classification{
		Flagged:    pr.IsGambling,
		Confidence: pr.Confidence,
		Score:      pr.RawScore,
	}, nil
}
