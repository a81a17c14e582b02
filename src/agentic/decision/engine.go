package decision

import (
	"github.com/signalworks/intent-engine/src/agentic/types"
)

// Engine evaluates a rule set against enriched signals. Rules are
// independent: a signal can trigger any subset, including none or all.
type Engine struct {
	rules *RuleSet
}

func NewEngine(rules *RuleSet) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Evaluate returns one decision per triggered rule, in rule definition
// order. Every condition of a rule must hold (strict conjunction).
func (e *Engine) Evaluate(s *types.Signal) []types.Decision {
	var decisions []types.Decision
	for _, rule := range e.rules.Rules() {
		if !allHold(rule.Conditions, s) {
			continue
		}
		decisions = append(decisions, types.Decision{
			Rule:       rule.Name,
			Action:     rule.Action,
			Confidence: clamp01(s.AIPriorityScore / 10),
			Reasoning:  Reasoning(s, rule.Name),
		})
	}
	return decisions
}

func allHold(conditions []Condition, s *types.Signal) bool {
	for _, c := range conditions {
		if !c.Holds(s) {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
