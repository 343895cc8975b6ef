package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Provider using the Anthropic Messages API
type AnthropicProvider struct {
	client anthropic.Client
	config *Config
}

// NewAnthropicProvider creates a new Anthropic translation provider
func NewAnthropicProvider(config *Config) (Provider, error) {
	if config.AnthropicKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}

	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(config.AnthropicKey)),
		config: config,
	}, nil
}

// Translate translates Irish text to English via the Messages API
func (p *AnthropicProvider) Translate(ctx context.Context, text string) (string, error) {
	if err := ValidateIrishText(text); err != nil {
		return "", err
	}

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.config.AnthropicModel),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(translationPrompt(text))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			result := strings.TrimSpace(block.Text)
			if result == "" {
				break
			}
			return result, nil
		}
	}

	return "", fmt.Errorf("no text content in Anthropic response")
}

// Name returns the provider name
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// IsAvailable checks if the Anthropic API is accessible
func (p *AnthropicProvider) IsAvailable() error {
	if p.config.AnthropicKey == "" {
		return fmt.Errorf("Anthropic API key not configured")
	}

	return nil
}
