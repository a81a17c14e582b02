package processor

import (
	"context"
	"log"
	"sync"

	"github.com/signalworks/intent-engine/src/agentic/decision"
	"github.com/signalworks/intent-engine/src/agentic/features"
	"github.com/signalworks/intent-engine/src/agentic/scoring"
	"github.com/signalworks/intent-engine/src/agentic/types"
)

const defaultWorkers = 4

// Processor runs the full enrichment pipeline over a batch of signals:
// feature aggregation, composite scoring, autonomous decisions. Signals are
// independent, so the batch fans out over a bounded worker pool.
type Processor struct {
	aggregator *features.Aggregator
	engine     *decision.Engine
	workers    int
}

func New(aggregator *features.Aggregator, engine *decision.Engine, workers int) *Processor {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Processor{aggregator: aggregator, engine: engine, workers: workers}
}

// Process enriches every signal and returns exactly one output per input,
// in input order. Cancelling the context stops scheduling further signals;
// in-flight ones complete, unscheduled ones come back with ai_error set.
func (p *Processor) Process(ctx context.Context, signals []types.Signal) []types.Signal {
	results := make([]types.Signal, len(signals))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.workers)

	for i := range signals {
		select {
		case <-ctx.Done():
			for j := i; j < len(signals); j++ {
				results[j] = signals[j]
				results[j].AIError = "processing cancelled"
			}
			wg.Wait()
			return results
		default:
		}

		wg.Add(1)
		go func(index int, sig types.Signal) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				sig.AIError = "processing cancelled"
				results[index] = sig
				return
			}

			results[index] = p.processOne(ctx, sig)
		}(i, signals[i])
	}

	wg.Wait()
	return results
}

func (p *Processor) processOne(ctx context.Context, sig types.Signal) (out types.Signal) {
	out = sig
	defer func() {
		if r := recover(); r != nil {
			log.Printf("processor: panic on signal %q: %v", out.CompanyName, r)
			out.AIError = "internal processing error"
		}
	}()

	p.aggregator.Enrich(ctx, &out)
	scoring.Compute(&out)
	out.AutonomousDecisions = p.engine.Evaluate(&out)
	return out
}
