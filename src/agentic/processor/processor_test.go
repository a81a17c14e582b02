package processor

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalworks/intent-engine/src/agentic/decision"
	"github.com/signalworks/intent-engine/src/agentic/features"
	"github.com/signalworks/intent-engine/src/agentic/knowledge"
	"github.com/signalworks/intent-engine/src/agentic/types"
	"github.com/signalworks/intent-engine/src/ai"
)

func newTestProcessor(workers int) *Processor {
	agg := features.New(knowledge.NewBase(), ai.NewStatic(), time.Second)
	return New(agg, decision.NewEngine(nil), workers)
}

func TestProcessKeepsCardinalityAndOrder(t *testing.T) {
	proc := newTestProcessor(8)

	signals := make([]types.Signal, 50)
	for i := range signals {
		signals[i] = types.Signal{
			CompanyName:     fmt.Sprintf("company-%d", i),
			Description:     "looking for a crm recommendation, urgent budget decision",
			SignalStrength:  float64(i%10 + 1),
			ConfidenceLevel: 0.5,
		}
	}

	out := proc.Process(context.Background(), signals)
	require.Len(t, out, len(signals))
	for i := range out {
		assert.Equal(t, signals[i].CompanyName, out[i].CompanyName, "order preserved")
		assert.NotZero(t, out[i].AIPriorityScore)
	}
}

func TestProcessIsDeterministic(t *testing.T) {
	proc := newTestProcessor(4)

	signals := []types.Signal{
		{
			CompanyName:     "Acme",
			Description:     "urgent series a startup looking for salesforce migration, budget and pricing talks",
			ContentSnippet:  "struggling with outdated manual workflow",
			SignalStrength:  9,
			ConfidenceLevel: 0.85,
			EngagementScore: 120,
		},
		{
			CompanyName:    "Globex",
			Description:    "nothing interesting",
			SignalStrength: 2,
		},
	}

	first := proc.Process(context.Background(), signals)
	second := proc.Process(context.Background(), signals)
	assert.Equal(t, first, second)
}

func TestProcessDoesNotMutateInput(t *testing.T) {
	proc := newTestProcessor(2)

	signals := []types.Signal{{CompanyName: "Acme", Description: "urgent crm purchase"}}
	proc.Process(context.Background(), signals)

	assert.Zero(t, signals[0].BuyingIntentScore)
	assert.Empty(t, signals[0].AutonomousDecisions)
}

func TestProcessCancelledContext(t *testing.T) {
	proc := newTestProcessor(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	signals := make([]types.Signal, 5)
	for i := range signals {
		signals[i] = types.Signal{CompanyName: fmt.Sprintf("c%d", i)}
	}

	out := proc.Process(ctx, signals)
	require.Len(t, out, len(signals))
	for i := range out {
		assert.Equal(t, "processing cancelled", out[i].AIError)
		assert.Equal(t, signals[i].CompanyName, out[i].CompanyName)
	}
}

func TestProcessDecisionScenario(t *testing.T) {
	proc := newTestProcessor(1)

	// Strong buying language saturates the buying cap; urgency words push
	// urgency past 0.7, so immediate_action must fire.
	signals := []types.Signal{{
		CompanyName:     "Acme",
		Description:     "urgent asap deadline: looking for vendor selection, pricing quote and demo",
		SignalStrength:  9,
		ConfidenceLevel: 0.9,
	}}

	out := proc.Process(context.Background(), signals)
	require.Len(t, out, 1)

	var actions []string
	for _, dec := range out[0].AutonomousDecisions {
		actions = append(actions, dec.Action)
	}
	assert.Contains(t, actions, "schedule_immediate_outreach")
}
