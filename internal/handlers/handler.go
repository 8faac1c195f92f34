package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/place-of-your-own/artworks/internal/coach"
	"github.com/place-of-your-own/artworks/internal/database"
	"github.com/place-of-your-own/artworks/internal/models"
)

// pipelineRunner runs one art-pipeline run.
type pipelineRunner interface {
	Run(ctx context.Context, req *models.RunRequest) (*models.PipelineStats, error)
}

// artworkRepository is the slice of the database layer the handlers use.
type artworkRepository interface {
	List(ctx context.Context, filter database.ArtworkFilter) ([]*models.Artwork, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Artwork, error)
	Update(ctx context.Context, id uuid.UUID, isApproved *bool, tags *[]string) (*models.Artwork, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// objectStore derives retrieval URLs, streams and deletes stored artwork
// objects.
type objectStore interface {
	ObjectURL(key string) string
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// coachResponder answers coach chat messages.
type coachResponder interface {
	Respond(ctx context.Context, message string, history []coach.Message) coach.Response
}

// Capabilities is reported by GET /v1/pipeline: which credentials are
// currently configured.
type Capabilities struct {
	GeminiConfigured   bool `json:"geminiConfigured"`
	DatabaseConfigured bool `json:"databaseConfigured"`
	StorageConfigured  bool `json:"storageConfigured"`
	PexelsConfigured   bool `json:"pexelsConfigured"`
}

// Handler contains all HTTP handlers
type Handler struct {
	runner       pipelineRunner
	artwork      artworkRepository
	objects      objectStore
	coach        coachResponder
	capabilities Capabilities
}

// NewHandler creates a new handler
func NewHandler(
	runner pipelineRunner,
	artwork artworkRepository,
	objects objectStore,
	coachResponder coachResponder,
	capabilities Capabilities,
) *Handler {
	return &Handler{
		runner:       runner,
		artwork:      artwork,
		objects:      objects,
		coach:        coachResponder,
		capabilities: capabilities,
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
