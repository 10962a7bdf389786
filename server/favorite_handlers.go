package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"E1FM/logger"
	"E1FM/model"
)

// GetFavoritesHandler lists all favorites.
func (h *APIHandler) GetFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favoriteRepo.ListFavorites(r.Context())
	if err != nil {
		logger.Error("Failed to list favorites", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

// AddFavoriteHandler favorites a song. The song must exist and must not
// already be favorited.
func (h *APIHandler) AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.SongID) == "" {
		writeError(w, http.StatusBadRequest, "song_id is required")
		return
	}

	if _, err := h.songRepo.GetSongByID(ctx, req.SongID); err != nil {
		writeRepoError(w, err, "Song not found", "")
		return
	}

	favorite := &model.Favorite{SongID: req.SongID}
	if err := h.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		writeRepoError(w, err, "Song not found", "Song already in favorites")
		return
	}

	writeJSON(w, http.StatusCreated, favorite)
}

// RemoveFavoriteHandler removes a favorite by the song it references.
func (h *APIHandler) RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	songID := mux.Vars(r)["song_id"]

	if err := h.favoriteRepo.DeleteFavoriteBySongID(r.Context(), songID); err != nil {
		writeRepoError(w, err, "Favorite not found", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Removed from favorites"})
}
