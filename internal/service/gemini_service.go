package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/lead-scorer/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type GeminiService struct {
	Client            *genai.Client
	Model             string
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	mu                sync.Mutex
	consecutiveErrors int
	circuitBreakerMax int
	circuitCooldown   time.Duration
	openedAt          time.Time
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	apiKey := geminiConfig.APIKey
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:            client,
		Model:             geminiConfig.Model,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          30 * time.Second,
		circuitBreakerMax: 5,
		circuitCooldown:   30 * time.Second,
	}, nil
}

// Complete runs GenerateContent with transport-level retries. The caller's
// context bounds the whole call, retries included.
func (s *GeminiService) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	if open, n := s.circuitOpen(); open {
		return "", fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", n)
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			zap.L().Debug("gemini: retrying GenerateContent",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", s.MaxRetries),
				zap.Duration("delay", delay),
			)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", fmt.Errorf("context done during retry: %w", ctx.Err())
			}
		}

		result, err := s.Client.Models.GenerateContent(ctx, s.Model, genai.Text(prompt), genConfig)
		if err == nil {
			s.recordSuccess()
			if err := s.validateGenerateResponse(result); err != nil {
				return "", fmt.Errorf("invalid response: %w", err)
			}
			return result.Text(), nil
		}

		lastErr = err

		if !s.isRetryableError(err) {
			if !callerGaveUp(ctx, err) {
				s.recordFailure()
			}
			return "", fmt.Errorf("generate content failed: %w", err)
		}

		zap.L().Warn("gemini: retryable error", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.recordFailure()
	return "", fmt.Errorf("max retries (%d) exceeded for GenerateContent: %w", s.MaxRetries, lastErr)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))

	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}

	// +/-12.5% jitter.
	jitter := time.Duration(float64(delay) * 0.25)
	delay = delay - jitter/2 + time.Duration(rand.Float64()*float64(jitter))

	return delay
}

func (s *GeminiService) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "context canceled") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return false
	}
	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 429: // Rate limit
			return true
		case 500, 502, 503, 504:
			return true
		case 400, 401, 403, 404:
			return false
		}
	}

	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF") {
		return true
	}

	return false
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}

// callerGaveUp reports failures caused by the caller cancelling, such as a
// sibling lead aborting the batch. They do not count toward the breaker.
func callerGaveUp(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}

// circuitOpen is called once per Complete. After the cooldown one trial call is
// let through per window; its outcome closes the breaker or restarts the window.
// Leads are scored concurrently, so breaker state is guarded.
func (s *GeminiService) circuitOpen() (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consecutiveErrors < s.circuitBreakerMax {
		return false, s.consecutiveErrors
	}
	if s.circuitCooldown > 0 && time.Since(s.openedAt) >= s.circuitCooldown {
		s.openedAt = time.Now()
		return false, s.consecutiveErrors
	}
	return true, s.consecutiveErrors
}

func (s *GeminiService) recordSuccess() {
	s.mu.Lock()
	s.consecutiveErrors = 0
	s.openedAt = time.Time{}
	s.mu.Unlock()
}

func (s *GeminiService) recordFailure() {
	s.mu.Lock()
	s.consecutiveErrors++
	if s.consecutiveErrors >= s.circuitBreakerMax {
		s.openedAt = time.Now()
	}
	s.mu.Unlock()
}

func (s *GeminiService) ResetCircuitBreaker() {
	s.recordSuccess()
	zap.L().Info("gemini: circuit breaker reset")
}

// GetCircuitBreakerStatus reports the state without consuming a trial call.
func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	isOpen = s.consecutiveErrors >= s.circuitBreakerMax &&
		(s.circuitCooldown <= 0 || time.Since(s.openedAt) < s.circuitCooldown)
	return s.consecutiveErrors, isOpen
}
