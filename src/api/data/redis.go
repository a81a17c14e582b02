package data

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

const (
	streamDecisions = "intent.decisions"
	reportKey       = "report:latest"
	reportTTL       = 15 * time.Minute
)

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// PublishDecision fans one decision out on the decision stream for
// downstream consumers (CRM sync, outreach schedulers).
func PublishDecision(ctx context.Context, rdb *redis.Client, signalID, company string, dec types.Decision) error {
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamDecisions,
		Values: map[string]interface{}{
			"signal_id":  signalID,
			"company":    company,
			"rule":       dec.Rule,
			"action":     dec.Action,
			"confidence": dec.Confidence,
			"reasoning":  dec.Reasoning,
		},
	}).Result()
	return err
}

func CacheReport(ctx context.Context, rdb *redis.Client, report interface{}) error {
	b, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, reportKey, b, reportTTL).Err()
}

func CachedReport(ctx context.Context, rdb *redis.Client) ([]byte, error) {
	return rdb.Get(ctx, reportKey).Bytes()
}
