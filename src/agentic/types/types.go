package types

import "strings"

// CompanyStage is the funding/maturity bucket detected from signal text.
type CompanyStage string

const (
	StageUnknown    CompanyStage = "unknown"
	StageStartup    CompanyStage = "startup"
	StageGrowth     CompanyStage = "growth"
	StageEnterprise CompanyStage = "enterprise"
)

// Entity is one named entity extracted from signal text.
type Entity struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Polarity holds VADER-style polarity components for a text blob.
type Polarity struct {
	Pos      float64 `json:"pos"`
	Neu      float64 `json:"neu"`
	Neg      float64 `json:"neg"`
	Compound float64 `json:"compound"`
}

// Decision is one action recommendation produced by a triggered rule.
// Immutable once created; it belongs to the signal it was computed for.
type Decision struct {
	Rule       string  `json:"rule"`
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Signal is one observed event about one company. Collectors populate the
// raw fields, enrichment fills the lexical/model fields, scoring fills the
// composite fields, and the decision engine appends autonomous decisions.
type Signal struct {
	ID             string `json:"id,omitempty"`
	CompanyName    string `json:"company_name"`
	SignalType     string `json:"signal_type,omitempty"`
	Source         string `json:"source,omitempty"`
	URL            string `json:"url,omitempty"`
	Description    string `json:"description"`
	ContentSnippet string `json:"content_snippet"`

	// Collector-supplied scores.
	SignalStrength  float64 `json:"signal_strength"`
	ConfidenceLevel float64 `json:"confidence_level"`
	EngagementScore float64 `json:"engagement_score"`

	// Lexical features from the knowledge base.
	BuyingIntentScore       float64      `json:"buying_intent_score"`
	BuyingSignalsFound      []string     `json:"buying_signals_found,omitempty"`
	PainScore               float64      `json:"pain_score"`
	PainPointsFound         []string     `json:"pain_points_found,omitempty"`
	PositiveScore           float64      `json:"positive_score"`
	PositiveIndicatorsFound []string     `json:"positive_indicators_found,omitempty"`
	UrgencyScore            float64      `json:"urgency_score"`
	UrgencyIndicatorsFound  []string     `json:"urgency_indicators_found,omitempty"`
	DetectedCompanyStage    CompanyStage `json:"detected_company_stage"`
	StageConfidence         float64      `json:"stage_confidence"`
	TechnologyInterests     []string     `json:"technology_interests,omitempty"`

	// Per-category match confidence for each detected technology interest,
	// the tech analogue of StageConfidence.
	TechInterestScores map[string]float64 `json:"tech_interest_scores,omitempty"`

	// Model-supplied features.
	AISentiment      string   `json:"ai_sentiment,omitempty"`
	AISentimentScore float64  `json:"ai_sentiment_score"`
	VaderSentiment   Polarity `json:"vader_sentiment"`
	PrimaryIntent    string   `json:"primary_intent,omitempty"`
	IntentConfidence float64  `json:"intent_confidence"`
	Entities         []Entity `json:"entities,omitempty"`

	// Composite scores.
	CompanyFitScore     float64 `json:"company_fit_score"`
	EngagementPotential float64 `json:"engagement_potential"`
	EntityClarity       float64 `json:"entity_clarity"`
	AIPriorityScore     float64 `json:"ai_priority_score"`

	AutonomousDecisions []Decision `json:"autonomous_decisions,omitempty"`

	// Set when a model collaborator failed mid-enrichment; fields produced
	// before the failure keep their values, the rest stay at defaults.
	AIError string `json:"ai_error,omitempty"`
}

// Text returns the combined free-text content used for analysis.
func (s *Signal) Text() string {
	return strings.TrimSpace(s.Description + " " + s.ContentSnippet)
}

// Field resolves a numeric field by its wire name for rule evaluation.
// Unknown names report ok=false and are evaluated as zero.
func (s *Signal) Field(name string) (float64, bool) {
	switch name {
	case "signal_strength":
		return s.SignalStrength, true
	case "confidence_level":
		return s.ConfidenceLevel, true
	case "engagement_score":
		return s.EngagementScore, true
	case "buying_intent_score":
		return s.BuyingIntentScore, true
	case "pain_score":
		return s.PainScore, true
	case "positive_score":
		return s.PositiveScore, true
	case "urgency_score":
		return s.UrgencyScore, true
	case "stage_confidence":
		return s.StageConfidence, true
	case "ai_sentiment_score":
		return s.AISentimentScore, true
	case "intent_confidence":
		return s.IntentConfidence, true
	case "company_fit_score":
		return s.CompanyFitScore, true
	case "engagement_potential":
		return s.EngagementPotential, true
	case "entity_clarity":
		return s.EntityClarity, true
	case "ai_priority_score":
		return s.AIPriorityScore, true
	}
	return 0, false
}
