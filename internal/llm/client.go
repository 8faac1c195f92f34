package llm

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Client wraps the Gemini API for image generation
type Client struct {
	apiKey      string
	modelImage  string // image generation, e.g. gemini-3-pro-image-preview
	genaiClient *genai.Client
}

// GeneratedImage is one successful generation result
type GeneratedImage struct {
	Data     []byte
	MimeType string // e.g. "image/png" (from the response blob)
	Prompt   string
}

// NewClient creates a new LLM client.
// apiEndpoint: optional Gemini API base URL; when set, all calls use it.
func NewClient(apiKey, modelImage, apiEndpoint string) *Client {
	if modelImage == "" {
		modelImage = "gemini-3-pro-image-preview"
	}

	var genaiClient *genai.Client
	if apiKey != "" {
		genaiOpts := []option.ClientOption{option.WithAPIKey(apiKey)}
		if apiEndpoint != "" {
			genaiOpts = append(genaiOpts, option.WithEndpoint(apiEndpoint))
		}
		var err error
		genaiClient, err = genai.NewClient(context.Background(), genaiOpts...)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize genai client for image generation")
		}
	}

	log.Info().
		Str("model_image", modelImage).
		Str("api_endpoint", apiEndpoint).
		Bool("genai_client", genaiClient != nil).
		Msg("LLM client initialized")

	return &Client{
		apiKey:      apiKey,
		modelImage:  modelImage,
		genaiClient: genaiClient,
	}
}
