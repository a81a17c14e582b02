package report

import (
	"sort"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

// Thresholds for the overview counters.
const (
	highIntentThreshold = 0.6
	urgentThreshold     = 0.5
	highFitThreshold    = 0.7
)

// Count is a labelled tally, sorted descending for stable output.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Recommendation is one actionable item extracted from a signal's
// autonomous decisions.
type Recommendation struct {
	Company     string  `json:"company"`
	Description string  `json:"description"`
	Action      string  `json:"action"`
	Confidence  float64 `json:"confidence"`
	Reasoning   string  `json:"reasoning"`
}

// Summary aggregates a processed batch for reporting. Aggregation across
// signals happens here, outside the scoring core.
type Summary struct {
	TotalSignals      int     `json:"total_signals"`
	HighIntentSignals int     `json:"high_intent_signals"`
	UrgentSignals     int     `json:"urgent_signals"`
	HighFitCompanies  int     `json:"high_fit_companies"`
	AverageSentiment  float64 `json:"average_sentiment"`
	AverageCompanyFit float64 `json:"average_company_fit"`

	IntentDistribution []Count `json:"intent_distribution"`
	ActionCounts       []Count `json:"action_counts"`
	TrendingTech       []Count `json:"trending_tech"`

	ImmediateActions []Recommendation `json:"immediate_actions"`
	HighPriority     []Recommendation `json:"high_priority"`
	ResearchNeeded   []Recommendation `json:"research_needed"`
}

// Generate builds the insight summary for a processed batch.
func Generate(signals []types.Signal) Summary {
	s := Summary{TotalSignals: len(signals)}
	if len(signals) == 0 {
		return s
	}

	intents := make(map[string]int)
	actions := make(map[string]int)
	tech := make(map[string]int)
	var sentimentSum, fitSum float64

	for i := range signals {
		sig := &signals[i]
		if sig.BuyingIntentScore > highIntentThreshold {
			s.HighIntentSignals++
		}
		if sig.UrgencyScore > urgentThreshold {
			s.UrgentSignals++
		}
		if sig.CompanyFitScore > highFitThreshold {
			s.HighFitCompanies++
		}
		sentimentSum += sig.AISentimentScore
		fitSum += sig.CompanyFitScore

		if sig.PrimaryIntent != "" {
			intents[sig.PrimaryIntent]++
		}
		for _, t := range sig.TechnologyInterests {
			tech[t]++
		}

		for _, dec := range sig.AutonomousDecisions {
			actions[dec.Action]++
			item := Recommendation{
				Company:     sig.CompanyName,
				Description: truncate(sig.Description, 60),
				Action:      dec.Action,
				Confidence:  dec.Confidence,
				Reasoning:   dec.Reasoning,
			}
			switch dec.Action {
			case "schedule_immediate_outreach":
				s.ImmediateActions = append(s.ImmediateActions, item)
			case "add_to_priority_queue":
				s.HighPriority = append(s.HighPriority, item)
			case "schedule_research_task":
				s.ResearchNeeded = append(s.ResearchNeeded, item)
			}
		}
	}

	n := float64(len(signals))
	s.AverageSentiment = sentimentSum / n
	s.AverageCompanyFit = fitSum / n
	s.IntentDistribution = sortedCounts(intents)
	s.ActionCounts = sortedCounts(actions)
	s.TrendingTech = sortedCounts(tech)

	byConfidence(s.ImmediateActions)
	byConfidence(s.HighPriority)
	byConfidence(s.ResearchNeeded)
	return s
}

func sortedCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for label, count := range m {
		out = append(out, Count{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func byConfidence(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Confidence > items[j].Confidence
	})
}

// truncate cuts on rune boundaries so multibyte text stays valid.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
