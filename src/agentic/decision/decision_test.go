package decision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		expr string
		want Condition
	}{
		{"signal_strength >= 8", Condition{"signal_strength", OpGE, 8}},
		{"urgency_score > 0.7", Condition{"urgency_score", OpGT, 0.7}},
		{"confidence_level < 0.6", Condition{"confidence_level", OpLT, 0.6}},
		{"pain_score == 1", Condition{"pain_score", OpEQ, 1}},
		{"entity_clarity<0.5", Condition{"entity_clarity", OpLT, 0.5}},
	}
	for _, tt := range tests {
		got, err := ParseCondition(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}
}

func TestParseConditionMalformed(t *testing.T) {
	for _, expr := range []string{
		"",
		"signal_strength",
		"signal_strength => 8",
		"signal_strength <= 8", // unsupported operator
		"signal_strength >= high",
		">= 8",
		"signal_strength >=",
	} {
		_, err := ParseCondition(expr)
		require.Error(t, err, expr)
		assert.ErrorIs(t, err, ErrMalformedCondition, expr)
	}
}

func TestNewRuleRejectsMalformedCondition(t *testing.T) {
	_, err := NewRule("bad", []string{"signal_strength >= 8", "urgency ~ 0.7"}, "noop")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCondition)
}

func TestDefaultRulesMatchParsedForm(t *testing.T) {
	// The typed defaults must agree with their string form.
	parsed, err := NewRule("immediate_action", []string{
		"signal_strength >= 8",
		"urgency_score > 0.7",
		"buying_intent_score > 0.8",
	}, "schedule_immediate_outreach")
	require.NoError(t, err)

	defaults := DefaultRules().Rules()
	require.Len(t, defaults, 4)
	assert.Equal(t, parsed, defaults[0])
}

func TestImmediateActionFires(t *testing.T) {
	engine := NewEngine(nil)
	sig := types.Signal{
		SignalStrength:    9,
		UrgencyScore:      0.8,
		BuyingIntentScore: 0.9,
		CompanyFitScore:   0.75,
		AIPriorityScore:   8.2,
	}

	decisions := engine.Evaluate(&sig)
	actions := actionsOf(decisions)
	assert.Contains(t, actions, "schedule_immediate_outreach")
	assert.Contains(t, actions, "add_to_priority_queue") // fit > 0.7 and strength >= 6
	for _, dec := range decisions {
		assert.InDelta(t, 0.82, dec.Confidence, 1e-9)
		assert.NotEmpty(t, dec.Reasoning)
	}
}

func TestResearchNeededFiresOnLowConfidence(t *testing.T) {
	engine := NewEngine(nil)
	sig := types.Signal{
		SignalStrength:  9,
		ConfidenceLevel: 0.3,
		EntityClarity:   0.2,
		AIPriorityScore: 3,
	}

	actions := actionsOf(engine.Evaluate(&sig))
	assert.Contains(t, actions, "schedule_research_task")
}

func TestConjunctionBoundary(t *testing.T) {
	engine := NewEngine(nil)
	// urgency_score exactly at the strict > threshold: rule must not fire.
	sig := types.Signal{
		SignalStrength:    9,
		UrgencyScore:      0.7,
		BuyingIntentScore: 0.9,
	}

	actions := actionsOf(engine.Evaluate(&sig))
	assert.NotContains(t, actions, "schedule_immediate_outreach")
}

func TestNoRulesFireOnZeroSignal(t *testing.T) {
	engine := NewEngine(nil)
	sig := types.Signal{SignalStrength: 1, ConfidenceLevel: 0.9, EntityClarity: 0.9}
	assert.Empty(t, engine.Evaluate(&sig))
}

func TestMissingFieldEvaluatesAsZero(t *testing.T) {
	rule, err := NewRule("ghost", []string{"no_such_field < 1"}, "act")
	require.NoError(t, err)
	engine := NewEngine(NewRuleSet([]Rule{rule}))

	decisions := engine.Evaluate(&types.Signal{})
	require.Len(t, decisions, 1)
	assert.Equal(t, "act", decisions[0].Action)

	rule, err = NewRule("ghost2", []string{"no_such_field >= 1"}, "act")
	require.NoError(t, err)
	engine = NewEngine(NewRuleSet([]Rule{rule}))
	assert.Empty(t, engine.Evaluate(&types.Signal{}))
}

func TestConfidenceClamped(t *testing.T) {
	engine := NewEngine(nil)
	sig := types.Signal{
		SignalStrength:    10,
		UrgencyScore:      1,
		BuyingIntentScore: 1,
		AIPriorityScore:   11.4,
	}

	decisions := engine.Evaluate(&sig)
	require.NotEmpty(t, decisions)
	assert.Equal(t, 1.0, decisions[0].Confidence)
}

func TestReasoningTemplates(t *testing.T) {
	sig := types.Signal{SignalStrength: 9, BuyingIntentScore: 0.85}
	assert.Equal(t,
		"High signal strength (9) with strong buying intent (0.85) and urgency indicators detected.",
		Reasoning(&sig, "immediate_action"))
	assert.Equal(t, "Standard processing rule applied.", Reasoning(&sig, "unheard_of"))
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  - name: hot_lead
    action: call_now
    conditions:
      - signal_strength >= 7
      - buying_intent_score > 0.5
`), 0o644))

	rs, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rs.Rules(), 1)
	assert.Equal(t, "hot_lead", rs.Rules()[0].Name)
	assert.Len(t, rs.Rules()[0].Conditions, 2)
}

func TestLoadRulesFailsFastOnMalformedCondition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  - name: broken
    action: noop
    conditions:
      - signal_strength ~ 7
`), 0o644))

	_, err := LoadRules(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCondition)
}

func actionsOf(decisions []types.Decision) []string {
	out := make([]string, 0, len(decisions))
	for _, d := range decisions {
		out = append(out, d.Action)
	}
	return out
}
