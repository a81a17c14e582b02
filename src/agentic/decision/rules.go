package decision

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule maps a conjunction of conditions to one action. Rules are defined at
// startup and never mutated afterwards.
type Rule struct {
	Name       string
	Conditions []Condition
	Action     string
}

// RuleSet is an ordered collection of rules, evaluated in definition order.
type RuleSet struct {
	rules []Rule
}

// NewRule parses the condition expressions for a rule. Any unparseable
// condition fails construction.
func NewRule(name string, conditions []string, action string) (Rule, error) {
	if name == "" || action == "" {
		return Rule{}, fmt.Errorf("rule %q: name and action are required", name)
	}
	parsed := make([]Condition, 0, len(conditions))
	for _, expr := range conditions {
		c, err := ParseCondition(expr)
		if err != nil {
			return Rule{}, fmt.Errorf("rule %q: %w", name, err)
		}
		parsed = append(parsed, c)
	}
	return Rule{Name: name, Conditions: parsed, Action: action}, nil
}

// NewRuleSet wraps already-validated rules.
func NewRuleSet(rules []Rule) *RuleSet {
	return &RuleSet{rules: rules}
}

// Rules returns the rules in evaluation order.
func (rs *RuleSet) Rules() []Rule {
	return rs.rules
}

// DefaultRules is the built-in decision policy.
func DefaultRules() *RuleSet {
	return NewRuleSet([]Rule{
		{
			Name: "immediate_action",
			Conditions: []Condition{
				{Field: "signal_strength", Op: OpGE, Threshold: 8},
				{Field: "urgency_score", Op: OpGT, Threshold: 0.7},
				{Field: "buying_intent_score", Op: OpGT, Threshold: 0.8},
			},
			Action: "schedule_immediate_outreach",
		},
		{
			Name: "high_priority",
			Conditions: []Condition{
				{Field: "signal_strength", Op: OpGE, Threshold: 6},
				{Field: "company_fit_score", Op: OpGT, Threshold: 0.7},
			},
			Action: "add_to_priority_queue",
		},
		{
			Name: "nurture",
			Conditions: []Condition{
				{Field: "signal_strength", Op: OpGE, Threshold: 4},
				{Field: "engagement_potential", Op: OpGT, Threshold: 0.5},
			},
			Action: "add_to_nurture_campaign",
		},
		{
			Name: "research_needed",
			Conditions: []Condition{
				{Field: "confidence_level", Op: OpLT, Threshold: 0.6},
				{Field: "entity_clarity", Op: OpLT, Threshold: 0.5},
			},
			Action: "schedule_research_task",
		},
	})
}

type ruleFile struct {
	Rules []struct {
		Name       string   `yaml:"name"`
		Conditions []string `yaml:"conditions"`
		Action     string   `yaml:"action"`
	} `yaml:"rules"`
}

// LoadRules reads a rule set from a YAML file. Malformed conditions surface
// here, at startup, never during per-signal evaluation.
func LoadRules(path string) (*RuleSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	var rf ruleFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if len(rf.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rules", path)
	}
	rules := make([]Rule, 0, len(rf.Rules))
	for _, r := range rf.Rules {
		rule, err := NewRule(r.Name, r.Conditions, r.Action)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return NewRuleSet(rules), nil
}
