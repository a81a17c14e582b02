package ai

import (
	"context"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

// Static is a deterministic offline provider used by smoke tests and local
// runs without an inference service. It returns neutral outputs.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) ClassifySentiment(ctx context.Context, text string) (Sentiment, error) {
	return Sentiment{Label: "NEUTRAL", Score: 0.5}, nil
}

func (s *Static) ClassifyIntent(ctx context.Context, text string, labels []string) (Intent, error) {
	if len(labels) == 0 {
		return Intent{Labels: []string{"unknown"}, Scores: []float64{0}}, nil
	}
	scores := make([]float64, len(labels))
	scores[0] = 0.5
	return Intent{Labels: labels, Scores: scores}, nil
}

func (s *Static) ExtractEntities(ctx context.Context, text string) ([]types.Entity, error) {
	return nil, nil
}

func (s *Static) Polarity(ctx context.Context, text string) (types.Polarity, error) {
	return types.Polarity{Neu: 1}, nil
}
