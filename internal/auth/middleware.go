package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Service guards mutating endpoints with a single admin bearer key. The
// bcrypt hash of the key lives in configuration; when no hash is configured
// the guard is disabled (development mode).
type Service struct {
	adminKeyHash string
}

// NewService creates an auth service. adminKeyHash may be empty.
func NewService(adminKeyHash string) *Service {
	if adminKeyHash == "" {
		log.Warn().Msg("No admin API key hash configured, admin endpoints are open")
	}
	return &Service{adminKeyHash: adminKeyHash}
}

// Middleware enforces the admin bearer key when one is configured.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.adminKeyHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			writeJSONError(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(s.adminKeyHash), []byte(parts[1])); err != nil {
			log.Debug().Msg("Admin key mismatch")
			writeJSONError(w, http.StatusUnauthorized, "invalid api key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
