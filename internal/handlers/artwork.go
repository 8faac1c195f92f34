package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/place-of-your-own/artworks/internal/database"
	"github.com/place-of-your-own/artworks/internal/models"
)

// ListArtwork handles GET /v1/artwork with optional filters theme,
// issueDate, source, approved, limit. Each record is augmented with a
// derived public URL for its storage key.
func (h *Handler) ListArtwork(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := database.ArtworkFilter{
		Theme: query.Get("theme"),
		Limit: 50,
	}

	if v := query.Get("issueDate"); v != "" {
		issueDate, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "issueDate must be an ISO date")
			return
		}
		filter.IssueDate = &issueDate
	}

	if v := query.Get("source"); v != "" {
		if v != models.SourceGenerated && v != models.SourceSourced {
			writeJSONError(w, http.StatusBadRequest, "source must be generated or sourced")
			return
		}
		filter.Source = v
	}

	if v := query.Get("approved"); v != "" {
		approved, err := strconv.ParseBool(v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "approved must be true or false")
			return
		}
		filter.Approved = &approved
	}

	if v := query.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	artworks, err := h.artwork.List(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list artwork")
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch artwork")
		return
	}

	for _, a := range artworks {
		a.PublicURL = h.objects.ObjectURL(a.StoragePath)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(artworks),
		"artwork": artworks,
	})
}

// UpdateArtwork handles PATCH /v1/artwork: approval state and/or tags.
// Approving stamps approved_at. 400 when no recognized field is present,
// 404 when the id matches no row.
func (h *Handler) UpdateArtwork(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID == "" {
		writeJSONError(w, http.StatusBadRequest, "missing required field: id")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	if req.IsApproved == nil && req.Tags == nil {
		writeJSONError(w, http.StatusBadRequest, "no valid fields to update")
		return
	}

	artwork, err := h.artwork.Update(r.Context(), id, req.IsApproved, req.Tags)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "artwork not found")
			return
		}
		log.Error().Err(err).Str("id", req.ID).Msg("Failed to update artwork")
		writeJSONError(w, http.StatusInternalServerError, "failed to update artwork")
		return
	}

	artwork.PublicURL = h.objects.ObjectURL(artwork.StoragePath)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"artwork": artwork,
	})
}

// DownloadArtwork handles GET /v1/artwork/image?id=: streams the stored
// image bytes. The derived public URL is the preferred retrieval path; this
// endpoint serves buckets that are neither public nor presignable by the
// caller.
func (h *Handler) DownloadArtwork(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		writeJSONError(w, http.StatusBadRequest, "missing required parameter: id")
		return
	}
	id, err := uuid.Parse(idParam)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	artwork, err := h.artwork.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "artwork not found")
			return
		}
		log.Error().Err(err).Str("id", idParam).Msg("Failed to load artwork for download")
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch artwork")
		return
	}

	body, err := h.objects.GetObject(r.Context(), artwork.StoragePath)
	if err != nil {
		log.Error().Err(err).Str("key", artwork.StoragePath).Msg("Failed to fetch artwork object")
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch artwork object")
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", "image/png")
	if _, err := io.Copy(w, body); err != nil {
		log.Debug().Err(err).Str("key", artwork.StoragePath).Msg("Artwork stream interrupted")
	}
}

// DeleteArtwork handles DELETE /v1/artwork?id=. The stored object is deleted
// best-effort before the metadata row; an object-delete failure does not
// block the row delete.
func (h *Handler) DeleteArtwork(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		writeJSONError(w, http.StatusBadRequest, "missing required parameter: id")
		return
	}
	id, err := uuid.Parse(idParam)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	artwork, err := h.artwork.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "artwork not found")
			return
		}
		log.Error().Err(err).Str("id", idParam).Msg("Failed to load artwork for delete")
		writeJSONError(w, http.StatusInternalServerError, "failed to delete artwork")
		return
	}

	if err := h.objects.Delete(r.Context(), artwork.StoragePath); err != nil {
		log.Warn().Err(err).Str("key", artwork.StoragePath).Msg("Failed to delete stored object, continuing")
	}

	if err := h.artwork.Delete(r.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "artwork not found")
			return
		}
		log.Error().Err(err).Str("id", idParam).Msg("Failed to delete artwork row")
		writeJSONError(w, http.StatusInternalServerError, "failed to delete artwork")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "artwork deleted",
	})
}
