package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/sashabaranov/go-openai"
)

const coachRequestTimeout = 60 * time.Second

type openAICoach struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32

	logger *logger.Logger
}

// NewOpenAICoach builds the chat-completion [Coach]. Without an API key the
// coach is disabled and every Reply fails with ErrCoachNotConfigured.
func NewOpenAICoach(cfg config.Coach, logger *logger.Logger) Coach {
	c := &openAICoach{
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		logger:      logger,
	}
	if cfg.OpenAIAPIKey == "" {
		logger.Warn().Str("func", "NewOpenAICoach").Msg("openai api key is empty, coach replies are disabled")
		return c
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.OpenAIURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: coachRequestTimeout}

	c.client = openai.NewClientWithConfig(clientCfg)
	return c
}

func (c *openAICoach) Reply(ctx context.Context, messages []models.CoachMessage) (string, error) {
	if c.client == nil {
		return "", ErrCoachNotConfigured
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %w", ErrRequestFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}

	logger.FromContext(ctx).Debug().Str("func", "openAICoach.Reply").
		Str("model", resp.Model).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("coach reply generated")
	return content, nil
}
