package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

func sampleBatch() []types.Signal {
	return []types.Signal{
		{
			CompanyName:         "Acme",
			Description:         "a very long description that should be cut off in recommendations because it exceeds sixty characters",
			BuyingIntentScore:   0.9,
			UrgencyScore:        0.8,
			CompanyFitScore:     0.8,
			AISentimentScore:    0.9,
			PrimaryIntent:       "buying intent",
			TechnologyInterests: []string{"crm", "cloud"},
			AutonomousDecisions: []types.Decision{
				{Rule: "immediate_action", Action: "schedule_immediate_outreach", Confidence: 0.9, Reasoning: "r1"},
				{Rule: "high_priority", Action: "add_to_priority_queue", Confidence: 0.9, Reasoning: "r2"},
			},
		},
		{
			CompanyName:         "Globex",
			BuyingIntentScore:   0.2,
			AISentimentScore:    0.5,
			CompanyFitScore:     0.4,
			PrimaryIntent:       "research intent",
			TechnologyInterests: []string{"crm"},
			AutonomousDecisions: []types.Decision{
				{Rule: "research_needed", Action: "schedule_research_task", Confidence: 0.3, Reasoning: "r3"},
			},
		},
		{
			CompanyName:   "Initech",
			PrimaryIntent: "buying intent",
		},
	}
}

func TestGenerateEmptyBatch(t *testing.T) {
	s := Generate(nil)
	assert.Zero(t, s.TotalSignals)
	assert.Empty(t, s.ActionCounts)
}

func TestGenerateOverview(t *testing.T) {
	s := Generate(sampleBatch())

	assert.Equal(t, 3, s.TotalSignals)
	assert.Equal(t, 1, s.HighIntentSignals)
	assert.Equal(t, 1, s.UrgentSignals)
	assert.Equal(t, 1, s.HighFitCompanies)
	assert.InDelta(t, (0.9+0.5+0)/3, s.AverageSentiment, 1e-9)
	assert.InDelta(t, (0.8+0.4+0)/3, s.AverageCompanyFit, 1e-9)
}

func TestGenerateDistributions(t *testing.T) {
	s := Generate(sampleBatch())

	require.NotEmpty(t, s.IntentDistribution)
	assert.Equal(t, Count{Label: "buying intent", Count: 2}, s.IntentDistribution[0])

	require.NotEmpty(t, s.TrendingTech)
	assert.Equal(t, Count{Label: "crm", Count: 2}, s.TrendingTech[0])
}

func TestGenerateRecommendationBuckets(t *testing.T) {
	s := Generate(sampleBatch())

	require.Len(t, s.ImmediateActions, 1)
	assert.Equal(t, "Acme", s.ImmediateActions[0].Company)
	assert.Len(t, s.ImmediateActions[0].Description, 63) // 60 + "..."

	require.Len(t, s.HighPriority, 1)
	require.Len(t, s.ResearchNeeded, 1)
	assert.Equal(t, "Globex", s.ResearchNeeded[0].Company)
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("é", 70)
	got := truncate(long, 60)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 60)+"...", got)

	assert.Equal(t, "short", truncate("short", 60))
}
