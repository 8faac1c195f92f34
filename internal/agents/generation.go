package agents

import (
	"context"

	"github.com/place-of-your-own/artworks/internal/llm"
)

// GenerationAgentImpl wraps llm.Client for batch image generation.
type GenerationAgentImpl struct {
	Client *llm.Client
}

// NewGenerationAgent returns a GenerationAgent that delegates to the LLM client.
func NewGenerationAgent(client *llm.Client) GenerationAgent {
	return &GenerationAgentImpl{Client: client}
}

// Generate delegates to llm.Client.GenerateBatch.
func (a *GenerationAgentImpl) Generate(ctx context.Context, theme string, count int) []llm.GeneratedImage {
	return a.Client.GenerateBatch(ctx, theme, count)
}
