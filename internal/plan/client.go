package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/IslamTayeb/LLM-file-organizer/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// Generator submits prompts to an OpenAI-compatible API and parses the
// response into a Plan.
type Generator struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewGenerator builds a Generator from the process configuration.
// A custom BaseURL supports non-OpenAI providers.
func NewGenerator(cfg *config.Config) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Generator{
		api:     openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Propose asks the model for an organization plan. It never returns an
// error: remote or parse failures degrade to a Plan with no commands
// and an explanation of what went wrong, which the caller will not
// execute. The executor's allowlist remains the real guard; nothing
// here trusts the returned commands.
func (g *Generator) Propose(ctx context.Context, query string, files []FileSummary) Plan {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(query, files)},
		},
	})
	if err != nil {
		return Plan{Explanation: fmt.Sprintf("model request failed: %v", err)}
	}
	if len(resp.Choices) == 0 {
		return Plan{Explanation: "model returned no choices"}
	}

	parsed, err := ParseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return Plan{Explanation: fmt.Sprintf("could not parse model response: %v", err)}
	}
	return parsed
}
