package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

// remote talks JSON to an external inference service hosting the sentiment,
// zero-shot intent, NER and polarity models.
type remote struct {
	baseURL    string
	httpClient *http.Client
}

func newRemote(cfg FactoryConfig) *remote {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &remote{
		baseURL:    cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (r *remote) post(ctx context.Context, path string, payload, out interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", r.baseURL+path, bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model service %s: %s", path, string(body))
	}
	return json.Unmarshal(body, out)
}

func (r *remote) ClassifySentiment(ctx context.Context, text string) (Sentiment, error) {
	var out Sentiment
	err := r.post(ctx, "/v1/sentiment", map[string]string{"text": text}, &out)
	if err != nil {
		return Sentiment{}, err
	}
	out.Score = clamp01(out.Score)
	return out, nil
}

func (r *remote) ClassifyIntent(ctx context.Context, text string, labels []string) (Intent, error) {
	var out Intent
	err := r.post(ctx, "/v1/intent", map[string]interface{}{
		"text":             text,
		"candidate_labels": labels,
	}, &out)
	if err != nil {
		return Intent{}, err
	}
	if len(out.Labels) == 0 || len(out.Labels) != len(out.Scores) {
		return Intent{}, fmt.Errorf("model service /v1/intent: mismatched labels and scores")
	}
	for i := range out.Scores {
		out.Scores[i] = clamp01(out.Scores[i])
	}
	return out, nil
}

func (r *remote) ExtractEntities(ctx context.Context, text string) ([]types.Entity, error) {
	var out struct {
		Entities []types.Entity `json:"entities"`
	}
	if err := r.post(ctx, "/v1/entities", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	for i := range out.Entities {
		out.Entities[i].Confidence = clamp01(out.Entities[i].Confidence)
	}
	return out.Entities, nil
}

func (r *remote) Polarity(ctx context.Context, text string) (types.Polarity, error) {
	var out types.Polarity
	if err := r.post(ctx, "/v1/polarity", map[string]string{"text": text}, &out); err != nil {
		return types.Polarity{}, err
	}
	return out, nil
}
