package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

var header = []string{
	"company_name", "signal_type", "source", "url",
	"description", "content_snippet",
	"signal_strength", "confidence_level", "engagement_score",
	"buying_intent_score", "pain_score", "positive_score", "urgency_score",
	"detected_company_stage", "technology_interests",
	"ai_sentiment", "ai_sentiment_score", "primary_intent", "intent_confidence",
	"company_fit_score", "engagement_potential", "entity_clarity", "ai_priority_score",
	"extracted_entities", "recommended_actions",
	"primary_recommendation", "recommendation_confidence", "ai_reasoning",
	"ai_error",
}

// WriteCSV flattens enriched signals into tabular form: entity and decision
// lists become comma-joined columns, and the highest-confidence decision
// becomes the primary recommendation.
func WriteCSV(w io.Writer, signals []types.Signal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range signals {
		if err := cw.Write(row(&signals[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(s *types.Signal) []string {
	entityTexts := make([]string, 0, len(s.Entities))
	for _, ent := range s.Entities {
		entityTexts = append(entityTexts, ent.Text)
	}

	actions := make([]string, 0, len(s.AutonomousDecisions))
	var primary *types.Decision
	for i := range s.AutonomousDecisions {
		dec := &s.AutonomousDecisions[i]
		actions = append(actions, dec.Action)
		if primary == nil || dec.Confidence > primary.Confidence {
			primary = dec
		}
	}

	primaryAction, primaryConfidence, primaryReasoning := "", "", ""
	if primary != nil {
		primaryAction = primary.Action
		primaryConfidence = num(primary.Confidence)
		primaryReasoning = primary.Reasoning
	}

	return []string{
		s.CompanyName, s.SignalType, s.Source, s.URL,
		s.Description, s.ContentSnippet,
		num(s.SignalStrength), num(s.ConfidenceLevel), num(s.EngagementScore),
		num(s.BuyingIntentScore), num(s.PainScore), num(s.PositiveScore), num(s.UrgencyScore),
		string(s.DetectedCompanyStage), strings.Join(s.TechnologyInterests, ", "),
		s.AISentiment, num(s.AISentimentScore), s.PrimaryIntent, num(s.IntentConfidence),
		num(s.CompanyFitScore), num(s.EngagementPotential), num(s.EntityClarity), num(s.AIPriorityScore),
		strings.Join(entityTexts, ", "), strings.Join(actions, ", "),
		primaryAction, primaryConfidence, primaryReasoning,
		s.AIError,
	}
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
