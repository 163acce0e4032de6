package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/config"
)

// Completer sends one prompt to a language model and returns its raw text reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewCompleter builds the provider selected by AI_PROVIDER, wrapped in a rate
// limiter when AI_RATE_LIMIT is set.
func NewCompleter(ctx context.Context, cfg *config.ScoringConfig) (Completer, error) {
	var (
		completer Completer
		err       error
	)
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		completer, err = NewGeminiService(ctx)
	case "openrouter":
		completer, err = NewOpenRouterService()
	case "anthropic":
		completer, err = NewAnthropicService()
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	if cfg.RateLimit > 0 {
		completer = NewRateLimitedCompleter(completer, cfg.RateLimit, cfg.RateBurst)
	}
	return completer, nil
}
