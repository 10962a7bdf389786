package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"E1FM/logger"
	"E1FM/model"
)

// GetSongsHandler lists all songs, optionally filtered by the search query
// parameter. The filter is a case-insensitive substring match against
// title, artist, or album.
func (h *APIHandler) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	songs, err := h.songRepo.ListSongs(r.Context(), search)
	if err != nil {
		logger.Error("Failed to list songs",
			logger.String("search", search),
			logger.ErrorField(err),
		)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, songs)
}

// GetSongHandler returns a single song by its public id.
func (h *APIHandler) GetSongHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	song, err := h.songRepo.GetSongByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Song not found", "")
		return
	}

	writeJSON(w, http.StatusOK, song)
}

// CreateSongHandler validates the creation payload and persists a new song.
// All six fields are required.
func (h *APIHandler) CreateSongHandler(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Artist = strings.TrimSpace(req.Artist)
	req.Album = strings.TrimSpace(req.Album)
	req.CoverURL = strings.TrimSpace(req.CoverURL)
	req.AudioURL = strings.TrimSpace(req.AudioURL)

	switch {
	case req.Title == "":
		writeError(w, http.StatusBadRequest, "title is required")
		return
	case req.Artist == "":
		writeError(w, http.StatusBadRequest, "artist is required")
		return
	case req.Album == "":
		writeError(w, http.StatusBadRequest, "album is required")
		return
	case req.Duration <= 0:
		writeError(w, http.StatusBadRequest, "duration must be a positive number of seconds")
		return
	case req.CoverURL == "":
		writeError(w, http.StatusBadRequest, "cover_url is required")
		return
	case req.AudioURL == "":
		writeError(w, http.StatusBadRequest, "audio_url is required")
		return
	}

	song := &model.Song{
		Title:    req.Title,
		Artist:   req.Artist,
		Album:    req.Album,
		Duration: req.Duration,
		CoverURL: req.CoverURL,
		AudioURL: req.AudioURL,
	}
	if err := h.songRepo.CreateSong(r.Context(), song); err != nil {
		logger.Error("Failed to create song",
			logger.String("title", req.Title),
			logger.ErrorField(err),
		)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusCreated, song)
}
