package config

import (
	"sync"
	"time"
)

type ScoringConfig struct {
	Provider      string // gemini, openrouter, anthropic
	OnAIFailure   string // abort, degrade
	ReasoningMode string // ai, combined
	Timeout       time.Duration
	Concurrency   int
	RateLimit     float64 // requests per second, 0 disables
	RateBurst     int
}

var (
	scoringConfig *ScoringConfig
	scoringOnce   sync.Once
)

func LoadScoringConfig() *ScoringConfig {
	scoringOnce.Do(func() {
		scoringConfig = &ScoringConfig{
			Provider:      envString("AI_PROVIDER", "gemini"),
			OnAIFailure:   envString("ON_AI_FAILURE", "degrade"),
			ReasoningMode: envString("REASONING_MODE", "ai"),
			Timeout:       envDuration("AI_TIMEOUT", 30*time.Second),
			Concurrency:   envInt("SCORE_CONCURRENCY", 0),
			RateLimit:     envFloat("AI_RATE_LIMIT", 0),
			RateBurst:     envInt("AI_RATE_BURST", 1),
		}
	})
	return scoringConfig
}
