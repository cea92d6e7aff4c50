package inference

import (
	"cmp"
	"context"
	"fmt"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

type GeminiInferencer struct {
	client *genai.Client
	apiKey string
	model  string
}

// NewGeminiInferencer creates a new inferencer instance using the Gemini API.
func NewGeminiInferencer(ctx context.Context, apiKey string, model string) (*GeminiInferencer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiInferencer{
		client: client,
		apiKey: apiKey,
		model:  cmp.Or(model, DefaultGeminiModel),
	}, nil
}

func (o *GeminiInferencer) ChangeConfig(ctx context.Context, config *genai.ClientConfig) error {
	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return err
	}
	o.client = client
	return nil
}

func (o *GeminiInferencer) Model() string {
	return o.model
}

// Infer sends the prompt as a single user turn and returns the text of the answer.
func (o *GeminiInferencer) Infer(ctx context.Context, prompt string) (string, error) {
	result, err := o.client.Models.GenerateContent(ctx, o.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini inference error: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}
