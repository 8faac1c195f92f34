package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/place-of-your-own/artworks/internal/coach"
)

// coachRequest is the body of POST /v1/coach.
type coachRequest struct {
	Message string          `json:"message"`
	History []coach.Message `json:"history"`
}

// Coach handles POST /v1/coach: classifies the message and returns the
// routed reply.
func (h *Handler) Coach(w http.ResponseWriter, r *http.Request) {
	var req coachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSONError(w, http.StatusBadRequest, "message is required")
		return
	}

	resp := h.coach.Respond(r.Context(), req.Message, req.History)
	writeJSON(w, http.StatusOK, resp)
}
