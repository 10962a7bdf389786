package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"E1FM/config"
	"E1FM/logger"
	"E1FM/model"
	"E1FM/repository"
)

// APIHandler handles all API requests.
type APIHandler struct {
	songRepo     repository.SongRepository
	playlistRepo repository.PlaylistRepository
	favoriteRepo repository.FavoriteRepository
	cfg          *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(
	songRepo repository.SongRepository,
	playlistRepo repository.PlaylistRepository,
	favoriteRepo repository.FavoriteRepository,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		songRepo:     songRepo,
		playlistRepo: playlistRepo,
		favoriteRepo: favoriteRepo,
		cfg:          cfg,
	}
}

// RootHandler answers the API root with a service banner.
func (h *APIHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "E1 Music API"})
}

// HealthHandler reports service liveness.
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// InitDataHandler loads the sample catalog if the store is still empty.
func (h *APIHandler) InitDataHandler(w http.ResponseWriter, r *http.Request) {
	seeded, err := repository.Seed(r.Context(), h.songRepo, h.playlistRepo)
	if err != nil {
		logger.Error("Failed to seed sample data", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if !seeded {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Data already initialized"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sample data initialized"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeRepoError maps domain errors to client status codes. Anything that
// is not a domain error is a store failure: logged, reported generically.
func writeRepoError(w http.ResponseWriter, err error, notFoundMsg, conflictMsg string) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, model.ErrDuplicate):
		writeError(w, http.StatusConflict, conflictMsg)
	default:
		logger.Error("Store operation failed", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "database error")
	}
}
