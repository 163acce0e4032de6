package service

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fadilmartias/lead-scorer/internal/config"
)

type AnthropicService struct {
	client    sdk.Client
	Model     string
	MaxTokens int64
}

func NewAnthropicService() (*AnthropicService, error) {
	cfg := config.LoadAnthropicConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}
	return &AnthropicService{
		client:    sdk.NewClient(option.WithAPIKey(cfg.APIKey)),
		Model:     cfg.Model,
		MaxTokens: int64(cfg.MaxTokens),
	}, nil
}

func (s *AnthropicService) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	msg, err := s.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(s.Model),
		MaxTokens:   s.MaxTokens,
		Temperature: sdk.Float(0.1),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic create message: %w", err)
	}

	text := messageText(msg)
	if text == "" {
		return "", fmt.Errorf("no text content in anthropic response")
	}
	return text, nil
}

func messageText(msg *sdk.Message) string {
	if msg == nil {
		return ""
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}
