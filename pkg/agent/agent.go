// Package agent provides a server-side Gemini client for chat assistant
// configs. Exported documents talk to the Gemini API directly from the
// browser; this package lets tooling exercise the same config ahead of
// export, so a bad API key or system prompt is caught before the document
// ships.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/whatsx/formkit/pkg/model"
)

// ErrEmptyResponse is returned when the model produced no usable text.
var ErrEmptyResponse = errors.New("agent: model returned no content")

// Client wraps a Gemini generative model configured from an AgentConfig.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// New dials the Gemini API and configures a model with the assistant's
// system prompt, temperature and token cap. The config is validated first.
func New(ctx context.Context, cfg model.AgentConfig) (*Client, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("agent: create client: %w", err)
	}

	m := client.GenerativeModel(cfg.ModelName())
	m.SetTemperature(float32(cfg.Temperature))
	m.SetMaxOutputTokens(int32(cfg.MaxTokens))
	if prompt := strings.TrimSpace(cfg.SystemPrompt); prompt != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(prompt)},
		}
	}

	return &Client{client: client, model: m}, nil
}

// Ask sends a single user message and returns the model's text reply.
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("agent: message is empty")
	}
	resp, err := c.model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("agent: generate content: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Probe sends a fixed prompt to verify the config end to end. A nil error
// means the key, model name and generation settings all work.
func (c *Client) Probe(ctx context.Context) error {
	_, err := c.Ask(ctx, "Reply with the single word: ok")
	return err
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var out strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(out.String())
}
