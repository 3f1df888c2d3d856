// Package gemini adapts model.Generator to the Gemini API. Text parts map
// to text content, blob parts to inline data, preserving order, all inside
// a single user-role content.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/companionlabs/ava-go-sdk/model"
)

// Options configure the Gemini model adapter.
type Options struct {
	Model       string
	Temperature float32
}

// Model wraps the Gemini generate-content API behind model.Generator.
type Model struct {
	client *genai.Client
	opts   Options
}

// New creates a Model using the given API key.
func New(ctx context.Context, apiKey string, optFns ...func(o *Options)) (*Model, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return NewFromClient(client, optFns...), nil
}

// NewFromClient creates a Model from an existing genai client.
func NewFromClient(client *genai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:       "gemini-1.5-flash",
		Temperature: 0.8,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// Generate sends the ordered parts as one user message and returns the
// concatenated text of the response. A response with no text (e.g. a
// safety block) is an error, handled by the caller's fallback policy.
func (m *Model) Generate(ctx context.Context, parts []model.Part) (string, error) {
	apiParts := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		switch part := p.(type) {
		case model.TextPart:
			apiParts = append(apiParts, genai.NewPartFromText(part.Text))
		case model.BlobPart:
			apiParts = append(apiParts, genai.NewPartFromBytes(part.Data, part.MIMEType))
		default:
			return "", fmt.Errorf("unsupported part type %T", p)
		}
	}

	content := genai.NewContentFromParts(apiParts, genai.RoleUser)
	temp := m.opts.Temperature
	resp, err := m.client.Models.GenerateContent(ctx, m.opts.Model, []*genai.Content{content}, &genai.GenerateContentConfig{
		Temperature: &temp,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model %s returned no text", m.opts.Model)
	}
	return text, nil
}
