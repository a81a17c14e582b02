package decision

import (
	"fmt"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

// Reasoning renders the human-readable justification for a triggered rule,
// interpolating the signal's live feature values. Unknown rule names get a
// generic message.
func Reasoning(s *types.Signal, ruleName string) string {
	switch ruleName {
	case "immediate_action":
		return fmt.Sprintf("High signal strength (%g) with strong buying intent (%.2f) and urgency indicators detected.",
			s.SignalStrength, s.BuyingIntentScore)
	case "high_priority":
		return fmt.Sprintf("Good company fit (%.2f) with solid signal strength (%g).",
			s.CompanyFitScore, s.SignalStrength)
	case "nurture":
		return fmt.Sprintf("Moderate engagement potential (%.2f) suggests nurturing opportunity.",
			s.EngagementPotential)
	case "research_needed":
		return fmt.Sprintf("Low confidence (%.2f) requires additional research before action.",
			s.ConfidenceLevel)
	}
	return "Standard processing rule applied."
}
