package scoring

import (
	"math"

	"github.com/signalworks/intent-engine/src/agentic/knowledge"
	"github.com/signalworks/intent-engine/src/agentic/types"
)

// Company fit weights.
const (
	FitBuyingWeight    = 0.3
	FitIntentWeight    = 0.2
	FitSentimentWeight = 0.2
	FitStageWeight     = 0.15
	FitTechWeight      = 0.15
)

// Engagement potential weights.
const (
	EngageUrgencyWeight    = 0.25
	EngagePainWeight       = 0.25
	EngageBuyingWeight     = 0.3
	EngageActivityWeight   = 0.2
	engagementScoreDivisor = 100
)

// Priority weights. The priority score is an unbounded weighted sum,
// practically 0-10 given input ranges; it is deliberately not clamped so
// relative ordering survives for ranking.
const (
	PriorityStrengthWeight   = 0.3
	PriorityFitWeight        = 2.5
	PriorityEngagementWeight = 2.5
	PriorityConfidenceWeight = 2.0
)

// EntityClarityFloor is used when no entities were extracted: some
// uncertainty, not total blindness.
const (
	EntityClarityFloor   = 0.3
	entityClarityDivisor = 5
)

// Compute derives the composite scores from the signal's already-populated
// feature fields. Pure and deterministic.
func Compute(s *types.Signal) {
	stageKnown := 0.0
	if s.DetectedCompanyStage != types.StageUnknown && s.DetectedCompanyStage != "" {
		stageKnown = 1
	}
	techRatio := math.Min(1, float64(len(s.TechnologyInterests))/knowledge.TechInterestCap)

	fit := FitBuyingWeight*s.BuyingIntentScore +
		FitIntentWeight*s.IntentConfidence +
		FitSentimentWeight*s.AISentimentScore +
		FitStageWeight*stageKnown +
		FitTechWeight*techRatio

	activity := math.Min(1, s.EngagementScore/engagementScoreDivisor)
	engagement := EngageUrgencyWeight*s.UrgencyScore +
		EngagePainWeight*s.PainScore +
		EngageBuyingWeight*s.BuyingIntentScore +
		EngageActivityWeight*activity

	clarity := EntityClarityFloor
	if len(s.Entities) > 0 {
		clarity = float64(len(s.Entities)) / entityClarityDivisor
	}

	priority := PriorityStrengthWeight*s.SignalStrength +
		PriorityFitWeight*fit +
		PriorityEngagementWeight*engagement +
		PriorityConfidenceWeight*s.ConfidenceLevel

	s.CompanyFitScore = round3(fit)
	s.EngagementPotential = round3(engagement)
	s.EntityClarity = round3(clarity)
	s.AIPriorityScore = round2(priority)
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
