package config

import (
	"os"
	"sync"
)

type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

var (
	anthropicConfig *AnthropicConfig
	anthropicOnce   sync.Once
)

func LoadAnthropicConfig() *AnthropicConfig {
	anthropicOnce.Do(func() {
		anthropicConfig = &AnthropicConfig{
			APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
			Model:     envString("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001"),
			MaxTokens: envInt("ANTHROPIC_MAX_TOKENS", 1024),
		}
	})
	return anthropicConfig
}
