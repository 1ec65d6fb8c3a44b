package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"alfredoptarigan/student-profile-analyzer/internal/logger"
)

// openAIGateway talks to any OpenAI-compatible chat completions endpoint
// (LM Studio, vLLM, OpenAI).
type openAIGateway struct {
	client   *openai.Client
	baseURL  string
	model    string
	endpoint string
}

// NewOpenAIGateway creates a gateway for baseURL (for example
// "http://localhost:1234/v1"). httpClient may be nil.
func NewOpenAIGateway(baseURL, apiKey, model string, httpClient *http.Client) LLMGateway {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &openAIGateway{
		client:   openai.NewClientWithConfig(cfg),
		baseURL:  baseURL,
		model:    model,
		endpoint: baseURL + "/chat/completions",
	}
}

// Complete implements LLMGateway.
func (g *openAIGateway) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		logger.Log.Warnf("❌ LLM request to %s failed: %v", g.endpoint, err)
		return "", g.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &GatewayError{Endpoint: g.endpoint, StatusCode: http.StatusOK, Err: fmt.Errorf("%w: no choices", ErrMalformedResponse)}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	logger.Log.Debugf("📊 LLM response received: %d characters", len(text))

	return text, nil
}

// Endpoint implements LLMGateway.
func (g *openAIGateway) Endpoint() string {
	return g.endpoint
}

func (g *openAIGateway) wrapError(err error) error {
	gwErr := &GatewayError{Endpoint: g.endpoint, Err: err}

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &apiErr):
		gwErr.StatusCode = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		gwErr.StatusCode = reqErr.HTTPStatusCode
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		gwErr.StatusCode = http.StatusOK
		gwErr.Err = fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return gwErr
}
