package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "meta-llama/llama-3.2-3b-instruct:free"

	// MissingChoicesAnswer is returned when the endpoint answers without choices.
	MissingChoicesAnswer = "Error: Unable to generate response from the API"

	failurePrefix = "Error communicating with OpenRouter API: "
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Client sends a system and a user message to an OpenAI-compatible
// chat-completions endpoint.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OPENROUTER_API_KEY not found in environment variables")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:         openai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Complete makes one request and returns the trimmed content of the first
// choice. Failures are returned as a readable answer, never as an error.
func (c *Client) Complete(ctx context.Context, system, user string) string {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		log.Printf("❌ LLM error: %v", err)
		return describeError(err)
	}

	if len(resp.Choices) == 0 {
		log.Printf("❌ LLM returned no choices")
		return MissingChoicesAnswer
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func describeError(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%sHTTP %d: %s", failurePrefix, apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("%sHTTP %d: %s", failurePrefix, reqErr.HTTPStatusCode, strings.TrimSpace(string(reqErr.Body)))
	}
	return failurePrefix + err.Error()
}
