package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterSystemPrompt = "You are a B2B sales analyst who classifies the buying intent of prospects. Answer with JSON only."

type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService() (*OpenRouterService, error) {
	cfg := config.LoadOpenRouterConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	return NewOpenRouterServiceWithClient(cfg.APIKey, cfg.Model, resty.New().SetBaseURL(cfg.BaseURL)), nil
}

func NewOpenRouterServiceWithClient(apiKey, model string, client *resty.Client) *OpenRouterService {
	return &OpenRouterService{APIKey: apiKey, Model: model, client: client}
}

func (s *OpenRouterService) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": openRouterSystemPrompt},
				{"role": "user", "content": prompt},
			},
			"temperature": 0.1,
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("openrouter returned %d: %s", resp.StatusCode(), msg)
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
