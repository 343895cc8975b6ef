package translation

import (
	"context"
	"fmt"
)

// Provider defines the interface for translation providers
type Provider interface {
	// Translate translates Irish text to English
	Translate(ctx context.Context, text string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for translation providers
type Config struct {
	Provider string // Provider name: "openai", "gemini" or "anthropic"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // Chat model, or a fine-tuned "ft:" model

	// OpenAIModelFunc, when set, is consulted on every translation instead
	// of OpenAIModel. This lets a fine-tune run that completes while the
	// server is up take effect without a restart.
	OpenAIModelFunc func() string

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string

	// Anthropic-specific settings
	AnthropicKey   string
	AnthropicModel string
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:       "openai",
		OpenAIModel:    "gpt-4o-mini",
		GeminiModel:    "gemini-2.0-flash",
		AnthropicModel: "claude-sonnet-4-5-20250929",
	}
}

// NewProvider creates the appropriate translation provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(config)

	case "anthropic":
		if config.AnthropicKey == "" {
			return nil, fmt.Errorf("Anthropic API key is required")
		}
		return NewAnthropicProvider(config)

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

// translationPrompt builds the instruction sent to all chat-based backends.
func translationPrompt(text string) string {
	return fmt.Sprintf("Translate the following Irish text to English. "+
		"Respond with only the English translation, nothing else.\n\n%s", text)
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Translate tries the primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) Translate(ctx context.Context, text string) (string, error) {
	result, err := p.primary.Translate(ctx, text)
	if err != nil {
		// Log the primary error
		fmt.Printf("Primary provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())

		// Try fallback
		return p.fallback.Translate(ctx, text)
	}
	return result, nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
