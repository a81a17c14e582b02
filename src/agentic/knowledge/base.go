package knowledge

import (
	"regexp"
	"strings"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

// Score caps: matches are divided by these before clamping to 1.0.
const (
	BuyingSignalCap = 3
	IndicatorCap    = 2
)

// TechInterestCap bounds how many detected tech categories contribute to
// company fit.
const TechInterestCap = 5

type pattern struct {
	keyword string
	re      *regexp.Regexp
}

type category struct {
	name     string
	patterns []pattern
}

// Features is the lexical feature bundle produced by matching one text blob.
type Features struct {
	BuyingIntentScore       float64
	BuyingSignalsFound      []string
	PainScore               float64
	PainPointsFound         []string
	PositiveScore           float64
	PositiveIndicatorsFound []string
	UrgencyScore            float64
	UrgencyIndicatorsFound  []string
	DetectedCompanyStage    types.CompanyStage
	StageConfidence         float64
	TechnologyInterests     []string
	TechInterestScores      map[string]float64
}

// Base is the immutable keyword catalogue. Build it once at startup and
// share it read-only across workers.
type Base struct {
	buying   []pattern
	pain     []pattern
	positive []pattern
	urgency  []pattern
	stages   []category // iteration order decides first-match-wins
	tech     []category
}

// NewBase compiles the keyword catalogue. Keywords are matched
// case-insensitively on word boundaries, so "ai" no longer fires inside
// unrelated words the way plain substring matching did.
func NewBase() *Base {
	return &Base{
		buying: compile([]string{
			"looking for", "need help with", "recommendation", "comparison",
			"evaluation", "budget", "procurement", "vendor selection",
			"implementation", "migration", "upgrade", "replace", "purchase",
			"buy", "pricing", "quote", "proposal", "demo", "trial",
		}),
		pain: compile([]string{
			"problem", "issue", "challenge", "struggling", "difficult",
			"frustrated", "broken", "not working", "slow", "expensive",
			"inefficient", "outdated", "manual", "error-prone", "complex",
		}),
		positive: compile([]string{
			"funding", "investment", "growth", "expansion", "hiring",
			"success", "achievement", "breakthrough", "launch", "partnership",
			"revenue", "profit", "scale", "opportunity", "innovation",
		}),
		urgency: compile([]string{
			"urgent", "asap", "immediately", "deadline", "critical",
			"emergency", "priority", "time-sensitive", "soon", "quickly",
			"rush", "fast", "now", "today", "this week",
		}),
		stages: []category{
			{string(types.StageStartup), compile([]string{"seed", "series a", "early stage", "founding", "mvp", "pre-seed"})},
			{string(types.StageGrowth), compile([]string{"series b", "series c", "scaling", "expansion", "growing", "mature"})},
			{string(types.StageEnterprise), compile([]string{"established", "fortune", "large", "enterprise", "corporate", "global"})},
		},
		tech: []category{
			{"crm", compile([]string{"salesforce", "hubspot", "pipedrive", "customer relationship", "lead management"})},
			{"marketing", compile([]string{"mailchimp", "marketo", "automation", "campaign", "email marketing"})},
			{"productivity", compile([]string{"slack", "asana", "monday", "workflow", "collaboration", "project management"})},
			{"development", compile([]string{"github", "jira", "devops", "api", "integration", "software development"})},
			{"analytics", compile([]string{"tableau", "looker", "dashboard", "reporting", "metrics", "business intelligence"})},
			{"security", compile([]string{"cybersecurity", "firewall", "compliance", "data protection", "authentication"})},
			{"cloud", compile([]string{"aws", "azure", "gcp", "cloud", "infrastructure", "hosting"})},
			{"ai_ml", compile([]string{"artificial intelligence", "machine learning", "ai", "ml", "automation", "chatbot"})},
		},
	}
}

func compile(keywords []string) []pattern {
	seen := make(map[string]bool, len(keywords))
	out := make([]pattern, 0, len(keywords))
	for _, kw := range keywords {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, pattern{
			keyword: kw,
			re:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`),
		})
	}
	return out
}

func matchAll(patterns []pattern, text string) []string {
	var found []string
	for _, p := range patterns {
		if p.re.MatchString(text) {
			found = append(found, p.keyword)
		}
	}
	return found
}

func capScore(matches, limit int) float64 {
	score := float64(matches) / float64(limit)
	if score > 1 {
		return 1
	}
	return score
}

// Match scores a text blob against every category. Empty or whitespace-only
// text yields all zeros, stage unknown and no interests.
func (b *Base) Match(text string) Features {
	f := Features{DetectedCompanyStage: types.StageUnknown}
	if strings.TrimSpace(text) == "" {
		return f
	}

	f.BuyingSignalsFound = matchAll(b.buying, text)
	f.BuyingIntentScore = capScore(len(f.BuyingSignalsFound), BuyingSignalCap)

	f.PainPointsFound = matchAll(b.pain, text)
	f.PainScore = capScore(len(f.PainPointsFound), IndicatorCap)

	f.PositiveIndicatorsFound = matchAll(b.positive, text)
	f.PositiveScore = capScore(len(f.PositiveIndicatorsFound), IndicatorCap)

	f.UrgencyIndicatorsFound = matchAll(b.urgency, text)
	f.UrgencyScore = capScore(len(f.UrgencyIndicatorsFound), IndicatorCap)

	// First stage category with a hit wins.
	for _, stage := range b.stages {
		matches := matchAll(stage.patterns, text)
		if len(matches) > 0 {
			f.DetectedCompanyStage = types.CompanyStage(stage.name)
			f.StageConfidence = float64(len(matches)) / float64(len(stage.patterns))
			break
		}
	}

	// Tech categories are not exclusive; every category with a hit counts.
	for _, tc := range b.tech {
		matches := matchAll(tc.patterns, text)
		if len(matches) > 0 {
			f.TechnologyInterests = append(f.TechnologyInterests, tc.name)
			if f.TechInterestScores == nil {
				f.TechInterestScores = make(map[string]float64)
			}
			f.TechInterestScores[tc.name] = float64(len(matches)) / float64(len(tc.patterns))
		}
	}

	return f
}

// IntentLabels returns the candidate labels handed to the zero-shot intent
// classifier.
func (b *Base) IntentLabels() []string {
	return []string{
		"buying intent", "research intent", "comparison shopping",
		"problem solving", "vendor evaluation", "technology adoption",
		"feature request", "support inquiry", "partnership interest",
	}
}

// Apply copies the lexical features onto a signal.
func (f Features) Apply(s *types.Signal) {
	s.BuyingIntentScore = f.BuyingIntentScore
	s.BuyingSignalsFound = f.BuyingSignalsFound
	s.PainScore = f.PainScore
	s.PainPointsFound = f.PainPointsFound
	s.PositiveScore = f.PositiveScore
	s.PositiveIndicatorsFound = f.PositiveIndicatorsFound
	s.UrgencyScore = f.UrgencyScore
	s.UrgencyIndicatorsFound = f.UrgencyIndicatorsFound
	s.DetectedCompanyStage = f.DetectedCompanyStage
	s.StageConfidence = f.StageConfidence
	s.TechnologyInterests = f.TechnologyInterests
	s.TechInterestScores = f.TechInterestScores
}
