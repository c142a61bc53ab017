// Package advisor produces the natural-language portfolio analysis, preferring
// an OpenAI chat completion and falling back to a deterministic rule-based
// narrative when no credential is configured or the call fails.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"riskscope/internal/domain"
)

const completionTemperature = 0.7

// CompletionClient requests a completion from a language model. Errors wrap
// domain.ErrModelRateLimited when the backend signals throttling, and
// domain.ErrModelRequestFailed otherwise.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type openAIClient struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

// NewOpenAIClient creates a CompletionClient backed by the OpenAI chat
// completions API, requesting a JSON object response.
func NewOpenAIClient(apiKey, model string, log zerolog.Logger) CompletionClient {
	return &openAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log.With().Str("component", "openai-client").Logger(),
	}
}

func (c *openAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: completionTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choice list", domain.ErrModelRequestFailed)
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyError maps transport errors onto the domain taxonomy so the retry
// loop can distinguish throttling from terminal failures.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", domain.ErrModelRateLimited, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", domain.ErrModelRateLimited, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrModelRequestFailed, err)
}
