package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"alfredoptarigan/student-profile-analyzer/internal/config"
)

// LLMGateway sends a single-turn prompt to the inference endpoint and returns
// the trimmed completion text. Implementations never retry.
type LLMGateway interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
	Endpoint() string
}

// NewLLMGateway builds the gateway selected by cfg.LLM.Provider, wrapped with
// the per-call deadline and rate limit from cfg.
func NewLLMGateway(ctx context.Context, cfg *config.Config) (LLMGateway, error) {
	var (
		gw  LLMGateway
		err error
	)

	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		gw = NewOpenAIGateway(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, nil)
	case config.ProviderGemini:
		gw, err = NewGeminiGateway(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.LLM.Provider)
	}

	return WithCallPolicy(gw, cfg.LLM.Timeout, NewLimiter(cfg.LLM.RateLimitRPM, cfg.LLM.RateLimitBurst)), nil
}

// NewLimiter returns a token bucket allowing rpm requests per minute.
// A non-positive rpm means no limit.
func NewLimiter(rpm, burst int) *rate.Limiter {
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
}

type policyGateway struct {
	next    LLMGateway
	timeout time.Duration
	limiter *rate.Limiter
}

// WithCallPolicy bounds every call with a deadline and waits on the limiter
// before it is sent. Waiting counts against the deadline.
func WithCallPolicy(next LLMGateway, timeout time.Duration, limiter *rate.Limiter) LLMGateway {
	return &policyGateway{
		next:    next,
		timeout: timeout,
		limiter: limiter,
	}
}

func (g *policyGateway) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", &GatewayError{Endpoint: g.next.Endpoint(), Err: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	return g.next.Complete(ctx, prompt, maxTokens)
}

func (g *policyGateway) Endpoint() string {
	return g.next.Endpoint()
}
