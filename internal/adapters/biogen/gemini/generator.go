// Package gemini genera bios de mascotas con la API de Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"petconnect/internal/ports/biogen"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

type Generator struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Generator{client: client, model: model}, nil
}

func (g *Generator) Generate(ctx context.Context, petName, petBreed string) (string, error) {
	prompt := fmt.Sprintf(
		"Create a short, fun, and quirky social media bio for a pet. The pet's name is %s and it is a %s. The bio should be from the pet's perspective. Keep it under 50 words and do not use hashtags.",
		petName, petBreed,
	)

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", biogen.ErrGenerationFailed, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", biogen.ErrGenerationFailed
	}
	return text, nil
}
