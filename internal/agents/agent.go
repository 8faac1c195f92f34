package agents

import (
	"context"

	"github.com/place-of-your-own/artworks/internal/llm"
	"github.com/place-of-your-own/artworks/internal/models"
	"github.com/place-of-your-own/artworks/internal/sourcing"
)

// SourcingAgent finds externally hosted images for a theme and fetches
// their bytes. Source never fails outward: a sourcing outage yields an
// empty list.
type SourcingAgent interface {
	Source(ctx context.Context, theme string, count int) []sourcing.Image
	Fetch(ctx context.Context, remoteURL string) ([]byte, error)
}

// GenerationAgent creates in-house images for a theme. The result may be
// shorter than count; individual failures are isolated inside the agent.
type GenerationAgent interface {
	Generate(ctx context.Context, theme string, count int) []llm.GeneratedImage
}

// StorageAgent persists a batch of normalized images, one object upload and
// one metadata row per item. Per-item failures are counted, never raised.
type StorageAgent interface {
	Store(ctx context.Context, images []models.StorableImage) (stored, failed int)
}
