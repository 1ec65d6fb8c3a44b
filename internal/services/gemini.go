package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/student-profile-analyzer/internal/logger"
)

type geminiGateway struct {
	client    *genai.Client
	modelName string
}

// NewGeminiGateway creates a Gemini gateway. An empty baseURL uses the
// public Gemini API endpoint.
func NewGeminiGateway(ctx context.Context, apiKey, modelName, baseURL string) (LLMGateway, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGateway{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete implements LLMGateway.
func (g *geminiGateway) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		logger.Log.Warnf("❌ Gemini API error: %v", err)
		gwErr := &GatewayError{Endpoint: g.Endpoint(), Err: err}
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			gwErr.StatusCode = apiErr.Code
		}
		return "", gwErr
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", &GatewayError{Endpoint: g.Endpoint(), Err: fmt.Errorf("%w: no candidates", ErrMalformedResponse)}
	}

	logger.Log.Debug("📊 Gemini response received")

	return strings.TrimSpace(resp.Text()), nil
}

// Endpoint implements LLMGateway.
func (g *geminiGateway) Endpoint() string {
	return "gemini:" + g.modelName
}
