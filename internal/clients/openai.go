package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/mwhite7112/webreader/internal/lookup"
)

// OpenAIConfig configures the chat completion analyzer.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string // empty uses the public API
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// BreakerSettings tunes the circuit breaker wrapped around the model call.
type BreakerSettings struct {
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

// OpenAIAnalyzer sends lookup prompts to an OpenAI-compatible chat
// completion endpoint and parses the JSON answer.
type OpenAIAnalyzer struct {
	client  *openai.Client
	cfg     OpenAIConfig
	breaker *gobreaker.CircuitBreaker
}

func NewOpenAIAnalyzer(cfg OpenAIConfig, bs BreakerSettings) *OpenAIAnalyzer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	threshold := bs.ConsecutiveFailures
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openai-lookup",
		MaxRequests: bs.MaxRequests,
		Interval:    bs.Interval,
		Timeout:     bs.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// A cancelled click says nothing about upstream health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &OpenAIAnalyzer{
		client:  openai.NewClientWithConfig(clientCfg),
		cfg:     cfg,
		breaker: breaker,
	}
}

// Analyze runs one chat completion for p. Every failure is returned as an
// error; there are no retries.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, p lookup.Prompt) (lookup.Result, error) {
	out, err := a.breaker.Execute(func() (interface{}, error) {
		return a.complete(ctx, p)
	})
	if err != nil {
		return lookup.Result{}, err
	}
	return out.(lookup.Result), nil
}

func (a *OpenAIAnalyzer) complete(ctx context.Context, p lookup.Prompt) (lookup.Result, error) {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return lookup.Result{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return lookup.Result{}, errors.New("openai returned no choices")
	}

	res, err := lookup.ParseResult(resp.Choices[0].Message.Content)
	if err != nil {
		return lookup.Result{}, err
	}
	return res, nil
}

// BreakerState reports the circuit breaker state.
func (a *OpenAIAnalyzer) BreakerState() string {
	return a.breaker.State().String()
}
