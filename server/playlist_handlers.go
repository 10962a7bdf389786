package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"E1FM/logger"
	"E1FM/model"
)

// GetPlaylistsHandler lists all playlists with their song id collections.
func (h *APIHandler) GetPlaylistsHandler(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.playlistRepo.ListPlaylists(r.Context())
	if err != nil {
		logger.Error("Failed to list playlists", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}

// GetPlaylistHandler returns a single playlist by its public id.
func (h *APIHandler) GetPlaylistHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	playlist, err := h.playlistRepo.GetPlaylistByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "Playlist not found", "")
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

// CreatePlaylistHandler validates the creation payload and persists a new
// playlist with an empty song collection.
func (h *APIHandler) CreatePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.CoverURL = strings.TrimSpace(req.CoverURL)

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.CoverURL == "" {
		writeError(w, http.StatusBadRequest, "cover_url is required")
		return
	}

	playlist := &model.Playlist{
		Name:        req.Name,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		SongIDs:     []string{},
	}
	if err := h.playlistRepo.CreatePlaylist(r.Context(), playlist); err != nil {
		logger.Error("Failed to create playlist",
			logger.String("name", req.Name),
			logger.ErrorField(err),
		)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

// DeletePlaylistHandler removes a playlist. Songs referenced by the
// playlist are independent entities and are not deleted.
func (h *APIHandler) DeletePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.playlistRepo.DeletePlaylist(r.Context(), id); err != nil {
		writeRepoError(w, err, "Playlist not found", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Playlist deleted"})
}

// GetPlaylistSongsHandler resolves a playlist's song ids into full song
// entities. Ids that no longer resolve are dropped from the result.
func (h *APIHandler) GetPlaylistSongsHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx := r.Context()

	playlist, err := h.playlistRepo.GetPlaylistByID(ctx, id)
	if err != nil {
		writeRepoError(w, err, "Playlist not found", "")
		return
	}

	songs := []*model.Song{}
	for _, songID := range playlist.SongIDs {
		song, err := h.songRepo.GetSongByID(ctx, songID)
		if errors.Is(err, model.ErrNotFound) {
			// The song was deleted after being added; skip the stale id.
			logger.Warn("Dropping dangling song id from playlist",
				logger.String("playlistId", id),
				logger.String("songId", songID),
			)
			continue
		}
		if err != nil {
			logger.Error("Failed to resolve playlist song",
				logger.String("playlistId", id),
				logger.String("songId", songID),
				logger.ErrorField(err),
			)
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
		songs = append(songs, song)
	}

	writeJSON(w, http.StatusOK, songs)
}

// AddSongToPlaylistHandler adds a song to a playlist. Both entities must
// exist and the song must not already be a member.
func (h *APIHandler) AddSongToPlaylistHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx := r.Context()

	var req model.AddSongRequest
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

	if err := h.playlistRepo.AddSong(ctx, id, req.SongID); err != nil {
		writeRepoError(w, err, "Playlist not found", "Song already in playlist")
		return
	}

	logger.Info("Song added to playlist",
		logger.String("playlistId", id),
		logger.String("songId", req.SongID),
	)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Song added to playlist"})
}

// RemoveSongFromPlaylistHandler removes a song from a playlist. Removing a
// song that is not a member reports not found.
func (h *APIHandler) RemoveSongFromPlaylistHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	songID := vars["song_id"]

	if err := h.playlistRepo.RemoveSong(r.Context(), id, songID); err != nil {
		writeRepoError(w, err, "Playlist or song not found", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Song removed from playlist"})
}
