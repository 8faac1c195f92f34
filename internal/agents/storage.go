package agents

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/place-of-your-own/artworks/internal/models"
)

// objectStore is the slice of the S3 client the storage agent uses.
type objectStore interface {
	Upload(ctx context.Context, key string, data io.Reader, contentType string, contentLength int64) error
	Delete(ctx context.Context, key string) error
}

// artworkRecorder is the slice of the artwork repository the agent uses.
type artworkRecorder interface {
	Create(ctx context.Context, artwork *models.Artwork) error
}

// StorageAgentImpl uploads image bytes to the object store and records one
// artwork row per upload. Items are independent: no transactional coupling,
// no batch abort.
type StorageAgentImpl struct {
	objects objectStore
	records artworkRecorder
}

// NewStorageAgent returns a StorageAgent writing to the given stores.
func NewStorageAgent(objects objectStore, records artworkRecorder) StorageAgent {
	return &StorageAgentImpl{objects: objects, records: records}
}

// Store persists each image independently. On upload failure the item is
// counted as failed and skipped. On metadata-insert failure the uploaded
// object is deleted best-effort so no orphan is left behind, and the item
// is counted as failed.
func (a *StorageAgentImpl) Store(ctx context.Context, images []models.StorableImage) (stored, failed int) {
	log.Info().Int("count", len(images)).Msg("Storage agent: saving images")

	for _, image := range images {
		key := storageKey(image.Theme)

		if err := a.objects.Upload(ctx, key, bytes.NewReader(image.Data), "image/png", int64(len(image.Data))); err != nil {
			log.Error().Err(err).Str("key", key).Msg("Artwork upload failed")
			failed++
			continue
		}

		tags := image.Tags
		if len(tags) == 0 {
			tags = strings.Fields(image.Theme)
		}

		artwork := &models.Artwork{
			ID:          uuid.New(),
			Theme:       image.Theme,
			IssueDate:   image.IssueDate,
			Source:      image.Source,
			Prompt:      image.Prompt,
			StoragePath: key,
			Tags:        tags,
			IsApproved:  false,
			CreatedAt:   time.Now(),
		}

		if err := a.records.Create(ctx, artwork); err != nil {
			log.Error().Err(err).Str("key", key).Msg("Artwork metadata insert failed")
			// Compensate so the object store holds no orphan for this item.
			if delErr := a.objects.Delete(ctx, key); delErr != nil {
				log.Warn().Err(delErr).Str("key", key).Msg("Compensating object delete failed")
			}
			failed++
			continue
		}

		stored++
		log.Info().Str("key", key).Str("source", image.Source).Msg("Artwork saved")
	}

	log.Info().Int("stored", stored).Int("failed", failed).Msg("Storage agent: batch complete")
	return stored, failed
}

// storageKey derives a unique object key organized by theme:
// <theme-slug>/<unix-millis>-<random-hex>.png
func storageKey(theme string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(theme), "-"))
	if slug == "" {
		slug = "untitled"
	}

	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// Timestamp alone; collisions within the same millisecond are the
		// only remaining risk.
		return slug + "/" + millis + ".png"
	}

	return slug + "/" + millis + "-" + hex.EncodeToString(suffix) + ".png"
}
