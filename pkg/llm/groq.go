package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultGroqBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

const defaultGroqModel = "llama-3.1-8b-instant"

// GroqClient talks to Groq (or any OpenAI-compatible endpoint) via the
// chat completions API.
type GroqClient struct {
	client *openai.Client
	model  string
}

func NewGroqClient(apiKey, model, baseURL string) *GroqClient {
	if model == "" {
		model = defaultGroqModel
	}
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &GroqClient{
		client: &client,
		model:  model,
	}
}

func (c *GroqClient) ModelName() string {
	return c.model
}

func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(512),
	})

	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
