// Package openai provides a Generator implementation using OpenAI.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/ersonp/sop-core/internal/domain/entities"
	"github.com/ersonp/sop-core/internal/domain/services"
	"github.com/ersonp/sop-core/internal/infrastructure/config"
)

// generationTemperature favors deterministic, standardized procedures over
// creative phrasing.
const generationTemperature = 0.4

// fallbackContent is the fixed substitute text returned when the call
// succeeds but yields no usable content.
const fallbackContent = "Errore nella generazione del contenuto. Riprova."

// Client implements the Generator interface using OpenAI.
type Client struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a new OpenAI generation client. A missing API key is a
// ConfigurationError, raised before any network interaction.
func NewClient(cfg config.LLMConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &entities.ConfigurationError{
			Reason: "OpenAI API key is required (set OPENAI_API_KEY or llm.api_key)",
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
		logger: logger,
	}, nil
}

// Generate performs a single blocking chat completion for the request and
// returns the generated markdown text.
func (c *Client) Generate(ctx context.Context, req entities.GenerationRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: services.SystemInstruction(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: services.BuildPrompt(req),
			},
		},
		Temperature: generationTemperature,
	})
	if err != nil {
		return "", &entities.UpstreamError{Err: fmt.Errorf("calling OpenAI: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return "", &entities.UpstreamError{Err: errors.New("no response from OpenAI")}
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		c.logger.Warn("generation returned empty content, substituting fallback",
			zap.String("model", c.model))
		return fallbackContent, nil
	}

	return content, nil
}
