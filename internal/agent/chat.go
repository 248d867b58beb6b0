package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/katiamach/weather-travel-planner/internal/httpclient"
)

// ErrEmptyCompletion is returned when the model sends no choices.
var ErrEmptyCompletion = errors.New("model returned no completion")

const maxResponseBytes = 4 << 20

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ChatClient is a Generator for an OpenAI-compatible chat completions endpoint.
type ChatClient struct {
	client  *httpclient.BaseClient
	baseURL string
	apiKey  string
}

// NewChatClient creates a ChatClient.
func NewChatClient(client *httpclient.BaseClient, baseURL, apiKey string) *ChatClient {
	return &ChatClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Generate sends the prompt as a system and a user message.
func (c *ChatClient) Generate(ctx context.Context, p Prompt) (Result, error) {
	messages := make([]chatMessage, 0, 2)
	if p.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: p.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: p.User})

	payload, err := json.Marshal(chatRequest{Model: p.Model, Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call model %s: %w", p.Model, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data chatResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(data.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	model := data.Model
	if model == "" {
		model = p.Model
	}

	return StructuredResult{
		Payload: data.Choices[0].Message.Content,
		Format:  "markdown",
		Model:   model,
	}, nil
}
