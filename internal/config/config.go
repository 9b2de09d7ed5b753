package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// PriceHeuristics groups the tunable constants used when interpreting budget
// input. The margin and bucket thresholds are heuristics rather than
// load-bearing business rules, so they live in configuration.
type PriceHeuristics struct {
	// SingleValueMargin widens a single budget value into a band, e.g. 0.2
	// turns "800" into [640, 960].
	SingleValueMargin float64
	// BucketLowMax and BucketMidMax are the upper bounds (exclusive) of the
	// "low" and "mid" price buckets.
	BucketLowMax float64
	BucketMidMax float64
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port                string
	DatasetPath         string
	GroqAPIKey          string
	GroqModel           string
	GroqBaseURL         string
	LLMTimeout          time.Duration
	MaxPromptCandidates int
	Price               PriceHeuristics
	RateLimitRecommend  RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatasetPath: getEnv("DATASET_PATH", "data/zomato.csv"),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMTimeout:  parseDuration(getEnv("LLM_TIMEOUT", "30s")),
		Price: PriceHeuristics{
			SingleValueMargin: parseFloat(getEnv("PRICE_SINGLE_VALUE_MARGIN", "0.2")),
			BucketLowMax:      parseFloat(getEnv("PRICE_BUCKET_LOW_MAX", "400")),
			BucketMidMax:      parseFloat(getEnv("PRICE_BUCKET_MID_MAX", "1000")),
		},
	}

	maxCandidates, err := strconv.Atoi(getEnv("MAX_PROMPT_CANDIDATES", "20"))
	if err != nil || maxCandidates <= 0 {
		return nil, fmt.Errorf("invalid MAX_PROMPT_CANDIDATES value: %q", os.Getenv("MAX_PROMPT_CANDIDATES"))
	}
	cfg.MaxPromptCandidates = maxCandidates

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_RECOMMEND", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RECOMMEND value: %w", err)
	}
	cfg.RateLimitRecommend = rl

	if cfg.Price.SingleValueMargin < 0 || cfg.Price.SingleValueMargin >= 1 {
		return nil, fmt.Errorf("PRICE_SINGLE_VALUE_MARGIN must be in [0, 1), got %v", cfg.Price.SingleValueMargin)
	}
	if cfg.Price.BucketLowMax <= 0 || cfg.Price.BucketMidMax <= cfg.Price.BucketLowMax {
		return nil, fmt.Errorf("price bucket thresholds must satisfy 0 < low < mid, got %v/%v",
			cfg.Price.BucketLowMax, cfg.Price.BucketMidMax)
	}

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

func parseFloat(input string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return -1
	}
	return f
}
