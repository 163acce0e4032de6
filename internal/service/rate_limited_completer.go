package service

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedCompleter spaces outbound completion calls so a large batch does
// not trip the provider's own rate limits.
type RateLimitedCompleter struct {
	next    Completer
	limiter *rate.Limiter
}

func NewRateLimitedCompleter(next Completer, perSecond float64, burst int) *RateLimitedCompleter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedCompleter{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (c *RateLimitedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return c.next.Complete(ctx, prompt)
}
