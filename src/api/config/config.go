package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MySQLDSN         string
	RedisURL         string
	JWTSecret        string
	APIKey           string
	Port             string
	ModelProvider    string
	ModelURL         string
	ModelTimeout     time.Duration
	RulesFile        string
	Workers          int
	DiscordToken     string
	DiscordChannelID string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	workers, _ := strconv.Atoi(getenv("WORKERS", "4"))
	timeoutSec, _ := strconv.Atoi(getenv("MODEL_TIMEOUT", "30"))
	return Config{
		MySQLDSN:         getenv("MYSQL_DSN", "intent:intent@tcp(127.0.0.1:3306)/intent_engine"),
		RedisURL:         getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		JWTSecret:        getenv("JWT_SECRET", ""),
		APIKey:           getenv("API_KEY", ""),
		Port:             getenv("PORT", "8080"),
		ModelProvider:    getenv("MODEL_PROVIDER", "remote"),
		ModelURL:         getenv("MODEL_URL", "http://127.0.0.1:9000"),
		ModelTimeout:     time.Duration(timeoutSec) * time.Second,
		RulesFile:        os.Getenv("RULES_FILE"),
		Workers:          workers,
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
	}
}
