package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/signalworks/intent-engine/src/agentic/decision"
	"github.com/signalworks/intent-engine/src/agentic/features"
	"github.com/signalworks/intent-engine/src/agentic/knowledge"
	"github.com/signalworks/intent-engine/src/agentic/processor"
	"github.com/signalworks/intent-engine/src/ai"
	"github.com/signalworks/intent-engine/src/api/config"
	"github.com/signalworks/intent-engine/src/api/data"
	"github.com/signalworks/intent-engine/src/api/types"
	"github.com/signalworks/intent-engine/src/api/webserver"
	"github.com/signalworks/intent-engine/src/notify"
)

func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(&types.SignalRecord{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func buildRules(path string) *decision.RuleSet {
	if path == "" {
		return decision.DefaultRules()
	}
	rules, err := decision.LoadRules(path)
	if err != nil {
		// Malformed conditions must fail at startup, never at evaluation.
		log.Fatalf("rules: %v", err)
	}
	log.Printf("loaded %d rules from %s", len(rules.Rules()), path)
	return rules
}

func main() {
	cfg := config.Load()

	db := data.MustMySQL(cfg.MySQLDSN)
	migrate(db)
	rdb := data.MustRedis(cfg.RedisURL)

	kb := knowledge.NewBase()
	provider := ai.NewProvider(ai.FactoryConfig{
		Provider: cfg.ModelProvider,
		URL:      cfg.ModelURL,
		Timeout:  cfg.ModelTimeout,
	})
	aggregator := features.New(kb, provider, cfg.ModelTimeout)
	engine := decision.NewEngine(buildRules(cfg.RulesFile))
	proc := processor.New(aggregator, engine, cfg.Workers)

	notifier, err := notify.New(cfg.DiscordToken, cfg.DiscordChannelID)
	if err != nil {
		log.Printf("discord notifier disabled: %v", err)
	}
	defer notifier.Close()

	router := webserver.New(cfg, db, rdb, proc, notifier)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("Intent Engine API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
