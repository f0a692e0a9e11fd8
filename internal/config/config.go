// Package config builds the process configuration once at startup so
// no component reads the environment on its own.
package config

import (
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_BASE_URL"
	EnvModel   = "ORGANIZER_MODEL"

	// DefaultTimeout bounds the model call; the remote API has no
	// deadline of its own.
	DefaultTimeout = 120 * time.Second
)

// Config carries everything the planning pipeline needs to talk to the
// model. It is constructed once and passed by reference.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// FromEnv reads the configuration from the process environment. A
// missing API key is a startup error for commands that call the model;
// index and organize never need one.
func FromEnv() (*Config, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s is not set", EnvAPIKey)
	}

	model := os.Getenv(EnvModel)
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Config{
		APIKey:  apiKey,
		BaseURL: os.Getenv(EnvBaseURL),
		Model:   model,
		Timeout: DefaultTimeout,
	}, nil
}
