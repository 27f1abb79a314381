package ai

import (
	"context"
	"errors"
	"net/http"
)

// translationTemperature keeps drafts close to the source wording.
const translationTemperature = 0.2

// Provider is a chat model that answers a single prompt. Complete returns
// ErrEmptyCompletion rather than an empty string.
type Provider interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai and anthropic, required for compatible
	Model    string

	// HTTPClient is optional; it routes calls through the outbound proxy.
	HTTPClient *http.Client
}

const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// NewProvider builds the provider named by cfg.Provider.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient), nil
	case ProviderCompatible:
		// Compatible endpoints speak the OpenAI chat completions protocol.
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		p := NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient)
		p.name = ProviderCompatible
		return p, nil
	default:
		return nil, ErrInvalidProvider
	}
}
