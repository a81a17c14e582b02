package features

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalworks/intent-engine/src/agentic/knowledge"
	"github.com/signalworks/intent-engine/src/agentic/types"
	"github.com/signalworks/intent-engine/src/ai"
)

// stubProvider returns canned outputs and can be told to fail from a given
// step onward.
type stubProvider struct {
	failIntent    bool
	failEntities  bool
	entities      []types.Entity
	sentimentText string
}

func (p *stubProvider) ClassifySentiment(ctx context.Context, text string) (ai.Sentiment, error) {
	p.sentimentText = text
	return ai.Sentiment{Label: "POSITIVE", Score: 0.9}, nil
}

func (p *stubProvider) ClassifyIntent(ctx context.Context, text string, labels []string) (ai.Intent, error) {
	if p.failIntent {
		return ai.Intent{}, errors.New("model unavailable")
	}
	return ai.Intent{Labels: []string{"buying intent"}, Scores: []float64{0.8}}, nil
}

func (p *stubProvider) ExtractEntities(ctx context.Context, text string) ([]types.Entity, error) {
	if p.failEntities {
		return nil, errors.New("ner backend down")
	}
	return p.entities, nil
}

func (p *stubProvider) Polarity(ctx context.Context, text string) (types.Polarity, error) {
	return types.Polarity{Pos: 0.6, Neu: 0.4, Compound: 0.5}, nil
}

func TestEnrichMergesModelAndLexicalFeatures(t *testing.T) {
	agg := New(knowledge.NewBase(), &stubProvider{
		entities: []types.Entity{
			{Text: "Acme", Label: "ORG", Confidence: 0.95},
			{Text: "maybe", Label: "MISC", Confidence: 0.5}, // below floor
		},
	}, time.Second)

	sig := types.Signal{
		CompanyName:    "Acme",
		Description:    "urgent: looking for a salesforce migration vendor selection",
		ContentSnippet: "budget approved",
	}
	agg.Enrich(context.Background(), &sig)

	assert.Empty(t, sig.AIError)
	assert.Equal(t, "POSITIVE", sig.AISentiment)
	assert.Equal(t, 0.9, sig.AISentimentScore)
	assert.Equal(t, "buying intent", sig.PrimaryIntent)
	assert.Equal(t, 0.8, sig.IntentConfidence)
	assert.Equal(t, 0.5, sig.VaderSentiment.Compound)

	require.Len(t, sig.Entities, 1)
	assert.Equal(t, "Acme", sig.Entities[0].Text)

	assert.Greater(t, sig.BuyingIntentScore, 0.0)
	assert.Greater(t, sig.UrgencyScore, 0.0)
	assert.Contains(t, sig.TechnologyInterests, "crm")
}

func TestEnrichRecordsModelFailureAndKeepsEarlierFields(t *testing.T) {
	agg := New(knowledge.NewBase(), &stubProvider{failIntent: true}, time.Second)

	sig := types.Signal{Description: "urgent: looking for a crm recommendation"}
	agg.Enrich(context.Background(), &sig)

	assert.Equal(t, "model unavailable", sig.AIError)
	// Model fields produced before the failure survive.
	assert.Equal(t, "POSITIVE", sig.AISentiment)
	// Model fields after the failure point stay at their defaults.
	assert.Empty(t, sig.PrimaryIntent)
	assert.Zero(t, sig.IntentConfidence)
	assert.Empty(t, sig.Entities)
	// Lexical features are local and survive the outage.
	assert.Greater(t, sig.BuyingIntentScore, 0.0)
	assert.Greater(t, sig.UrgencyScore, 0.0)
	assert.Contains(t, sig.TechnologyInterests, "crm")
}

func TestEnrichFailureLateInPipeline(t *testing.T) {
	agg := New(knowledge.NewBase(), &stubProvider{failEntities: true}, time.Second)

	sig := types.Signal{Description: "struggling with an outdated dashboard"}
	agg.Enrich(context.Background(), &sig)

	assert.Equal(t, "ner backend down", sig.AIError)
	assert.Equal(t, "buying intent", sig.PrimaryIntent)
	assert.Greater(t, sig.PainScore, 0.0)
}

func TestModelTextTruncatedOnRuneBoundary(t *testing.T) {
	stub := &stubProvider{}
	agg := New(knowledge.NewBase(), stub, time.Second)

	// 3-byte runes; 512 is not a multiple of 3, so a naive byte slice would
	// split one.
	sig := types.Signal{Description: strings.Repeat("界", 200)}
	agg.Enrich(context.Background(), &sig)

	assert.LessOrEqual(t, len(stub.sentimentText), 512)
	assert.True(t, utf8.ValidString(stub.sentimentText))
}

func TestEnrichHonorsContextCancellation(t *testing.T) {
	agg := New(knowledge.NewBase(), ai.NewStatic(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sig := types.Signal{Description: "anything"}
	agg.Enrich(ctx, &sig)
	// The static provider ignores ctx, so enrichment completes; the point is
	// that Enrich never panics or errors out of the per-signal boundary.
	assert.Empty(t, sig.AIError)
}
