package generation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Generator produces the final answer text for a composed prompt.
// Unlike tagging, a generation failure is returned as an error and
// aborts the submission.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GroqGenerator calls an OpenAI-compatible chat-completions backend
// (Groq in production) with a fixed model and temperature.
type GroqGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewGroqGenerator(apiKey, baseURL, model string, temperature float32, timeout time.Duration) *GroqGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &GroqGenerator{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
	}
}

// Generate sends one user message and returns the top completion text.
func (g *GroqGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
