package ai

import (
	"context"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

// Sentiment is the top sentiment classification for a text.
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Intent carries ranked zero-shot labels with matching scores.
type Intent struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Provider is the model collaborator boundary. Implementations must honor
// context cancellation; every call is treated as a synchronous, cancellable
// unit of work.
type Provider interface {
	ClassifySentiment(ctx context.Context, text string) (Sentiment, error)
	ClassifyIntent(ctx context.Context, text string, labels []string) (Intent, error)
	ExtractEntities(ctx context.Context, text string) ([]types.Entity, error)
	Polarity(ctx context.Context, text string) (types.Polarity, error)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
