package features

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/signalworks/intent-engine/src/agentic/knowledge"
	"github.com/signalworks/intent-engine/src/agentic/types"
	"github.com/signalworks/intent-engine/src/ai"
)

// Model inputs are truncated to this many bytes; the knowledge base sees the
// full text.
const modelTextLimit = 512

// EntityConfidenceFloor filters low-confidence extracted entities.
const EntityConfidenceFloor = 0.7

// Aggregator merges knowledge-base output with model collaborator outputs
// into one canonical feature record on the signal. The knowledge base and
// provider are shared read-only.
type Aggregator struct {
	kb       *knowledge.Base
	provider ai.Provider
	timeout  time.Duration
}

func New(kb *knowledge.Base, provider ai.Provider, timeout time.Duration) *Aggregator {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Aggregator{kb: kb, provider: provider, timeout: timeout}
}

// Enrich populates the signal's feature fields. Lexical features come first
// and are applied unconditionally; they are computed locally and must
// survive any model outage. Model calls then run in a fixed order:
// sentiment, polarity, intent, entities. A model failure or timeout sets
// ai_error and stops model enrichment for this signal; fields already
// produced keep their values, the rest stay at defaults. Enrichment failure
// never aborts the batch.
func (a *Aggregator) Enrich(ctx context.Context, s *types.Signal) {
	if s.DetectedCompanyStage == "" {
		s.DetectedCompanyStage = types.StageUnknown
	}

	text := s.Text()
	a.kb.Match(text).Apply(s)

	modelText := text
	if len(modelText) > modelTextLimit {
		// Cut on a rune boundary so multibyte content stays valid UTF-8.
		cut := modelTextLimit
		for cut > 0 && !utf8.RuneStart(modelText[cut]) {
			cut--
		}
		modelText = modelText[:cut]
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	sentiment, err := a.provider.ClassifySentiment(ctx, modelText)
	if err != nil {
		s.AIError = err.Error()
		return
	}
	s.AISentiment = sentiment.Label
	s.AISentimentScore = sentiment.Score

	polarity, err := a.provider.Polarity(ctx, modelText)
	if err != nil {
		s.AIError = err.Error()
		return
	}
	s.VaderSentiment = polarity

	intent, err := a.provider.ClassifyIntent(ctx, modelText, a.kb.IntentLabels())
	if err != nil {
		s.AIError = err.Error()
		return
	}
	s.PrimaryIntent = intent.Labels[0]
	s.IntentConfidence = intent.Scores[0]

	entities, err := a.provider.ExtractEntities(ctx, modelText)
	if err != nil {
		s.AIError = err.Error()
		return
	}
	for _, ent := range entities {
		if ent.Confidence > EntityConfidenceFloor {
			s.Entities = append(s.Entities, ent)
		}
	}
}
