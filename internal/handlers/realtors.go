package handlers

import (
	"net/http"
	"strconv"

	"github.com/place-of-your-own/artworks/internal/realtors"
)

// ListRealtors handles GET /v1/realtors with optional query params q, city
// (repeatable), specialty (repeatable), min_experience, service (repeatable).
// Empty params mean no constraint.
func (h *Handler) ListRealtors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := realtors.FilterState{
		Query:       query.Get("q"),
		Cities:      query["city"],
		Specialties: query["specialty"],
		Services:    query["service"],
	}

	if v := query.Get("min_experience"); v != "" {
		minExp, err := strconv.Atoi(v)
		if err != nil || minExp < 0 {
			writeJSONError(w, http.StatusBadRequest, "min_experience must be a non-negative integer")
			return
		}
		filter.MinYearsExperience = minExp
	}

	matched := realtors.Filter(realtors.Directory, filter)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(matched),
		"realtors": matched,
	})
}
