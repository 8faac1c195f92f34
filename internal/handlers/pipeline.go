package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/place-of-your-own/artworks/internal/models"
	"github.com/place-of-your-own/artworks/internal/pipeline"
)

// RunPipeline handles POST /v1/pipeline: triggers one art-pipeline run and
// returns its stats. A run with item-level failures still returns 200 with
// success:true; callers must inspect stats.failed.
func (h *Handler) RunPipeline(w http.ResponseWriter, r *http.Request) {
	var req models.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Theme == "" {
		writeJSONError(w, http.StatusBadRequest, "missing or invalid required field: theme")
		return
	}
	if req.IssueDate == "" {
		writeJSONError(w, http.StatusBadRequest, "missing or invalid required field: issueDate")
		return
	}

	stats, err := h.runner.Run(r.Context(), &req)
	if err != nil {
		if errors.Is(err, pipeline.ErrInvalidRequest) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("theme", req.Theme).Msg("Pipeline run failed")
		writeJSONError(w, http.StatusInternalServerError, "pipeline execution failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &models.RunResponse{Success: true, Stats: stats})
}

// PipelineInfo handles GET /v1/pipeline: a static capability descriptor plus
// which credentials are configured.
func (h *Handler) PipelineInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "Art Pipeline System",
		"version":     "1.0.0",
		"description": "Automated monthly artwork generation for A Place of Your Own magazine",
		"endpoints": map[string]interface{}{
			"POST": map[string]interface{}{
				"description":    "Trigger the art generation pipeline",
				"requiredFields": []string{"theme", "issueDate"},
				"optionalFields": map[string]string{
					"sourcedCount":   "Number of images to source (default: 5)",
					"generatedCount": "Number of images to generate (default: 5)",
				},
			},
		},
		"status": h.capabilities,
	})
}
