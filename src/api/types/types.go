package types

import (
	"encoding/json"
	"time"

	agentic "github.com/signalworks/intent-engine/src/agentic/types"
)

// SignalRecord is the persisted form of an enriched signal. Nested lists
// (entities, decisions, matched keywords) are stored as JSON columns and
// flattened only at export time.
type SignalRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	Fingerprint string `gorm:"size:16;uniqueIndex"`

	CompanyName    string `gorm:"size:256;index"`
	SignalType     string `gorm:"size:64"`
	Source         string `gorm:"size:256"`
	URL            string `gorm:"size:512"`
	Description    string `gorm:"type:text"`
	ContentSnippet string `gorm:"type:text"`

	SignalStrength  float64
	ConfidenceLevel float64
	EngagementScore float64

	BuyingIntentScore float64
	PainScore         float64
	PositiveScore     float64
	UrgencyScore      float64
	CompanyStage      string `gorm:"size:16"`
	StageConfidence   float64
	TechnologyJSON    string `gorm:"type:text"`
	TechScoresJSON    string `gorm:"type:text"`
	KeywordsJSON      string `gorm:"type:text"`

	AISentiment      string `gorm:"size:16"`
	AISentimentScore float64
	PrimaryIntent    string `gorm:"size:64"`
	IntentConfidence float64
	EntitiesJSON     string `gorm:"type:text"`

	CompanyFitScore     float64
	EngagementPotential float64
	EntityClarity       float64
	AIPriorityScore     float64 `gorm:"index"`

	DecisionsJSON string `gorm:"type:text"`
	AIError       string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type matchedKeywords struct {
	Buying   []string `json:"buying,omitempty"`
	Pain     []string `json:"pain,omitempty"`
	Positive []string `json:"positive,omitempty"`
	Urgency  []string `json:"urgency,omitempty"`
}

// FromSignal builds the persistence row for an enriched signal.
func FromSignal(s *agentic.Signal, fingerprint string) SignalRecord {
	techJSON, _ := json.Marshal(s.TechnologyInterests)
	techScoresJSON, _ := json.Marshal(s.TechInterestScores)
	entitiesJSON, _ := json.Marshal(s.Entities)
	decisionsJSON, _ := json.Marshal(s.AutonomousDecisions)
	keywordsJSON, _ := json.Marshal(matchedKeywords{
		Buying:   s.BuyingSignalsFound,
		Pain:     s.PainPointsFound,
		Positive: s.PositiveIndicatorsFound,
		Urgency:  s.UrgencyIndicatorsFound,
	})

	return SignalRecord{
		ID:                  s.ID,
		Fingerprint:         fingerprint,
		CompanyName:         s.CompanyName,
		SignalType:          s.SignalType,
		Source:              s.Source,
		URL:                 s.URL,
		Description:         s.Description,
		ContentSnippet:      s.ContentSnippet,
		SignalStrength:      s.SignalStrength,
		ConfidenceLevel:     s.ConfidenceLevel,
		EngagementScore:     s.EngagementScore,
		BuyingIntentScore:   s.BuyingIntentScore,
		PainScore:           s.PainScore,
		PositiveScore:       s.PositiveScore,
		UrgencyScore:        s.UrgencyScore,
		CompanyStage:        string(s.DetectedCompanyStage),
		StageConfidence:     s.StageConfidence,
		TechnologyJSON:      string(techJSON),
		TechScoresJSON:      string(techScoresJSON),
		KeywordsJSON:        string(keywordsJSON),
		AISentiment:         s.AISentiment,
		AISentimentScore:    s.AISentimentScore,
		PrimaryIntent:       s.PrimaryIntent,
		IntentConfidence:    s.IntentConfidence,
		EntitiesJSON:        string(entitiesJSON),
		CompanyFitScore:     s.CompanyFitScore,
		EngagementPotential: s.EngagementPotential,
		EntityClarity:       s.EntityClarity,
		AIPriorityScore:     s.AIPriorityScore,
		DecisionsJSON:       string(decisionsJSON),
		AIError:             s.AIError,
	}
}

// ToSignal rebuilds the in-memory signal from a persisted row.
func (r *SignalRecord) ToSignal() agentic.Signal {
	s := agentic.Signal{
		ID:                   r.ID,
		CompanyName:          r.CompanyName,
		SignalType:           r.SignalType,
		Source:               r.Source,
		URL:                  r.URL,
		Description:          r.Description,
		ContentSnippet:       r.ContentSnippet,
		SignalStrength:       r.SignalStrength,
		ConfidenceLevel:      r.ConfidenceLevel,
		EngagementScore:      r.EngagementScore,
		BuyingIntentScore:    r.BuyingIntentScore,
		PainScore:            r.PainScore,
		PositiveScore:        r.PositiveScore,
		UrgencyScore:         r.UrgencyScore,
		DetectedCompanyStage: agentic.CompanyStage(r.CompanyStage),
		StageConfidence:      r.StageConfidence,
		AISentiment:          r.AISentiment,
		AISentimentScore:     r.AISentimentScore,
		PrimaryIntent:        r.PrimaryIntent,
		IntentConfidence:     r.IntentConfidence,
		CompanyFitScore:      r.CompanyFitScore,
		EngagementPotential:  r.EngagementPotential,
		EntityClarity:        r.EntityClarity,
		AIPriorityScore:      r.AIPriorityScore,
		AIError:              r.AIError,
	}
	_ = json.Unmarshal([]byte(r.TechnologyJSON), &s.TechnologyInterests)
	_ = json.Unmarshal([]byte(r.TechScoresJSON), &s.TechInterestScores)
	_ = json.Unmarshal([]byte(r.EntitiesJSON), &s.Entities)
	_ = json.Unmarshal([]byte(r.DecisionsJSON), &s.AutonomousDecisions)
	var kw matchedKeywords
	if json.Unmarshal([]byte(r.KeywordsJSON), &kw) == nil {
		s.BuyingSignalsFound = kw.Buying
		s.PainPointsFound = kw.Pain
		s.PositiveIndicatorsFound = kw.Positive
		s.UrgencyIndicatorsFound = kw.Urgency
	}
	return s
}
