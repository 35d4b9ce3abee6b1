// Package gateway holds the outbound client for the AI chat-completions
// service. The server never talks to the model provider directly from
// handlers; all calls funnel through [ChatClient] so the API key stays
// server-side.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mindpad-app/mindpad/internal/config"
	"github.com/mindpad-app/mindpad/internal/logger"
)

// ChatClient sends one system+user prompt pair to the chat-completions
// gateway and returns the assistant's reply text.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chatGatewayClient is the resty-backed implementation of [ChatClient]
// speaking the OpenAI-compatible chat-completions protocol.
type chatGatewayClient struct {
	client *resty.Client
	model  string
	logger *logger.Logger
}

// NewChatGatewayClient constructs a [ChatClient] against the configured
// gateway URL. The API key is attached to every request as a bearer token.
func NewChatGatewayClient(cfg config.AI, log *logger.Logger) ChatClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.GatewayURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &chatGatewayClient{
		client: cli,
		model:  cfg.Model,
		logger: log,
	}
}

// Complete performs one chat completion round trip.
//
// Upstream failure mapping:
//   - HTTP 429 → [ErrRateLimited]
//   - HTTP 402 → [ErrCreditsExhausted]
//   - any other non-2xx → [ErrGatewayFailure], with status and body logged
//     server-side only
func (c *chatGatewayClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	log := logger.FromContext(ctx)

	body := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	var parsed chatCompletionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&parsed).
		Post("/v1/chat/completions")
	if err != nil {
		log.Err(err).Str("func", "*chatGatewayClient.Complete").Msg("ai gateway request failed")
		return "", fmt.Errorf("%w: %w", ErrGatewayFailure, err)
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode() == http.StatusPaymentRequired:
		return "", ErrCreditsExhausted
	case resp.IsError():
		log.Error().
			Str("func", "*chatGatewayClient.Complete").
			Int("status", resp.StatusCode()).
			Str("body", string(resp.Body())).
			Msg("ai gateway returned an error")
		return "", ErrGatewayFailure
	}

	if len(parsed.Choices) == 0 {
		log.Error().Str("func", "*chatGatewayClient.Complete").Msg("ai gateway returned no choices")
		return "", ErrGatewayFailure
	}

	return parsed.Choices[0].Message.Content, nil
}
