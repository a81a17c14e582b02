package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

func TestWriteCSVFlattensNestedFields(t *testing.T) {
	signals := []types.Signal{
		{
			CompanyName:         "Acme",
			Description:         "urgent crm purchase",
			SignalStrength:      9,
			TechnologyInterests: []string{"crm", "cloud"},
			Entities: []types.Entity{
				{Text: "Acme", Label: "ORG", Confidence: 0.95},
				{Text: "Jane Doe", Label: "PER", Confidence: 0.9},
			},
			AutonomousDecisions: []types.Decision{
				{Rule: "nurture", Action: "add_to_nurture_campaign", Confidence: 0.4, Reasoning: "moderate"},
				{Rule: "immediate_action", Action: "schedule_immediate_outreach", Confidence: 0.9, Reasoning: "strong"},
			},
		},
		{CompanyName: "Globex"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, signals))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 signals

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[name] = i
	}

	acme := rows[1]
	assert.Equal(t, "Acme", acme[cols["company_name"]])
	assert.Equal(t, "Acme, Jane Doe", acme[cols["extracted_entities"]])
	assert.Equal(t, "add_to_nurture_campaign, schedule_immediate_outreach", acme[cols["recommended_actions"]])
	// Highest-confidence decision wins the primary slot.
	assert.Equal(t, "schedule_immediate_outreach", acme[cols["primary_recommendation"]])
	assert.Equal(t, "0.9", acme[cols["recommendation_confidence"]])
	assert.Equal(t, "strong", acme[cols["ai_reasoning"]])

	globex := rows[2]
	assert.Empty(t, globex[cols["primary_recommendation"]])
	assert.Empty(t, globex[cols["recommendation_confidence"]])
}
