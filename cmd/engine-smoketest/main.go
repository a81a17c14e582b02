package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/signalworks/intent-engine/src/agentic/decision"
	"github.com/signalworks/intent-engine/src/agentic/features"
	"github.com/signalworks/intent-engine/src/agentic/knowledge"
	"github.com/signalworks/intent-engine/src/agentic/processor"
	"github.com/signalworks/intent-engine/src/agentic/report"
	"github.com/signalworks/intent-engine/src/agentic/types"
	"github.com/signalworks/intent-engine/src/ai"
	"github.com/signalworks/intent-engine/src/export"
)

var (
	providerFlag = flag.String("provider", "static", "Model provider: static|remote")
	urlFlag      = flag.String("url", "http://127.0.0.1:9000", "Inference service URL for the remote provider")
	workersFlag  = flag.Int("workers", 4, "Concurrent signal workers")
	timeoutFlag  = flag.Duration("timeout", 30*time.Second, "Per-signal model timeout")
	rulesFlag    = flag.String("rules", "", "Optional YAML rule file")
	csvFlag      = flag.String("csv", "", "Write flattened CSV to this path")
)

var sampleSignals = []types.Signal{
	{
		CompanyName:     "Acme Robotics",
		SignalType:      "news",
		Description:     "Acme Robotics raises series a funding and is hiring aggressively",
		ContentSnippet:  "The startup is looking for a vendor selection process for its CRM migration, budget approved, urgent deadline this week",
		SignalStrength:  9,
		ConfidenceLevel: 0.85,
		EngagementScore: 140,
	},
	{
		CompanyName:     "Globex Corp",
		SignalType:      "forum",
		Description:     "Globex team struggling with slow manual reporting workflow",
		ContentSnippet:  "Looking for a dashboard and business intelligence recommendation, current tooling is outdated and expensive",
		SignalStrength:  6,
		ConfidenceLevel: 0.7,
		EngagementScore: 45,
	},
	{
		CompanyName:     "Initech",
		SignalType:      "job_posting",
		Description:     "Initech posts a devops integration role",
		SignalStrength:  4,
		ConfidenceLevel: 0.4,
		EngagementScore: 10,
	},
}

func main() {
	log.SetFlags(0)
	flag.Parse()

	rules := decision.DefaultRules()
	if *rulesFlag != "" {
		var err error
		rules, err = decision.LoadRules(*rulesFlag)
		if err != nil {
			log.Fatalf("rules: %v", err)
		}
	}

	provider := ai.NewProvider(ai.FactoryConfig{
		Provider: *providerFlag,
		URL:      *urlFlag,
		Timeout:  *timeoutFlag,
	})
	aggregator := features.New(knowledge.NewBase(), provider, *timeoutFlag)
	proc := processor.New(aggregator, decision.NewEngine(rules), *workersFlag)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	processed := proc.Process(ctx, sampleSignals)

	for i := range processed {
		sig := &processed[i]
		fmt.Printf("== %s (%s)\n", sig.CompanyName, sig.SignalType)
		fmt.Printf("   buying=%.2f pain=%.2f urgency=%.2f stage=%s tech=%v\n",
			sig.BuyingIntentScore, sig.PainScore, sig.UrgencyScore, sig.DetectedCompanyStage, sig.TechnologyInterests)
		fmt.Printf("   fit=%.3f engagement=%.3f clarity=%.3f priority=%.2f\n",
			sig.CompanyFitScore, sig.EngagementPotential, sig.EntityClarity, sig.AIPriorityScore)
		if sig.AIError != "" {
			fmt.Printf("   ai_error=%s\n", sig.AIError)
		}
		for _, dec := range sig.AutonomousDecisions {
			fmt.Printf("   -> %s [%s] confidence=%.2f\n      %s\n", dec.Action, dec.Rule, dec.Confidence, dec.Reasoning)
		}
	}

	summary := report.Generate(processed)
	fmt.Printf("\nsignals=%d high_intent=%d urgent=%d avg_fit=%.3f\n",
		summary.TotalSignals, summary.HighIntentSignals, summary.UrgentSignals, summary.AverageCompanyFit)
	for _, ac := range summary.ActionCounts {
		fmt.Printf("  action %s: %d\n", ac.Label, ac.Count)
	}

	if *csvFlag != "" {
		f, err := os.Create(*csvFlag)
		if err != nil {
			log.Fatalf("csv: %v", err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, processed); err != nil {
			log.Fatalf("csv: %v", err)
		}
		log.Printf("wrote %s", *csvFlag)
	}
}
