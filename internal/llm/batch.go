package llm

import (
	"context"

	"github.com/rs/zerolog/log"
)

// imageFunc is the single-image generation call; injected in tests.
type imageFunc func(ctx context.Context, prompt string) (*GeneratedImage, error)

// GenerateBatch issues count generation attempts for a theme, cycling through
// the style templates. Each attempt is isolated: a failure is logged and
// skipped, so the result may be shorter than count.
func (c *Client) GenerateBatch(ctx context.Context, theme string, count int) []GeneratedImage {
	return generateBatch(ctx, c.GenerateImage, theme, count)
}

func generateBatch(ctx context.Context, generate imageFunc, theme string, count int) []GeneratedImage {
	prompts := Prompts(theme, count)
	images := make([]GeneratedImage, 0, len(prompts))

	for i, prompt := range prompts {
		img, err := generate(ctx, prompt)
		if err != nil {
			log.Warn().
				Err(err).
				Int("attempt", i+1).
				Int("total", len(prompts)).
				Str("theme", theme).
				Msg("Image generation attempt failed, skipping")
			continue
		}
		images = append(images, *img)
	}

	log.Info().
		Str("theme", theme).
		Int("requested", count).
		Int("generated", len(images)).
		Msg("Generation complete")

	return images
}
