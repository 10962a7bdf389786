package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"E1FM/model"
)

func TestGetSongsHandler(t *testing.T) {
	songs := []*model.Song{
		{ID: "s1", Title: "Neon Dreams", Artist: "Synthwave Collective", Album: "Electric Nights"},
		{ID: "s2", Title: "Midnight City", Artist: "Urban Echo", Album: "City Lights"},
	}

	t.Run("returns all songs without search", func(t *testing.T) {
		var gotSearch string
		h := newTestHandler(&fakeSongRepo{
			ListSongsFunc: func(ctx context.Context, search string) ([]*model.Song, error) {
				gotSearch = search
				return songs, nil
			},
		}, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
		rr := httptest.NewRecorder()
		h.GetSongsHandler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "", gotSearch)

		var got []*model.Song
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("passes search term to repository", func(t *testing.T) {
		var gotSearch string
		h := newTestHandler(&fakeSongRepo{
			ListSongsFunc: func(ctx context.Context, search string) ([]*model.Song, error) {
				gotSearch = search
				return songs[:1], nil
			},
		}, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/songs?search=neon", nil)
		rr := httptest.NewRecorder()
		h.GetSongsHandler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "neon", gotSearch)
	})

	t.Run("store failure reports a generic server error", func(t *testing.T) {
		h := newTestHandler(&fakeSongRepo{
			ListSongsFunc: func(ctx context.Context, search string) ([]*model.Song, error) {
				return nil, errors.New("connection reset")
			},
		}, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
		rr := httptest.NewRecorder()
		h.GetSongsHandler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection reset")
	})
}

func TestGetSongHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := newTestHandler(&fakeSongRepo{
			GetSongByIDFunc: func(ctx context.Context, id string) (*model.Song, error) {
				return &model.Song{ID: id, Title: "Pulse"}, nil
			},
		}, nil, nil)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/songs/s1", nil),
			map[string]string{"id": "s1"})
		rr := httptest.NewRecorder()
		h.GetSongHandler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got model.Song
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "s1", got.ID)
	})

	t.Run("missing song is 404", func(t *testing.T) {
		h := newTestHandler(&fakeSongRepo{}, nil, nil)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/songs/nope", nil),
			map[string]string{"id": "nope"})
		rr := httptest.NewRecorder()
		h.GetSongHandler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateSongHandler(t *testing.T) {
	valid := map[string]any{
		"title":     "A",
		"artist":    "B",
		"album":     "C",
		"duration":  120,
		"cover_url": "x",
		"audio_url": "y",
	}

	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{name: "missing title", body: map[string]any{"artist": "B", "album": "C", "duration": 120, "cover_url": "x", "audio_url": "y"}, wantCode: http.StatusBadRequest},
		{name: "blank artist", body: map[string]any{"title": "A", "artist": "   ", "album": "C", "duration": 120, "cover_url": "x", "audio_url": "y"}, wantCode: http.StatusBadRequest},
		{name: "missing album", body: map[string]any{"title": "A", "artist": "B", "duration": 120, "cover_url": "x", "audio_url": "y"}, wantCode: http.StatusBadRequest},
		{name: "zero duration", body: map[string]any{"title": "A", "artist": "B", "album": "C", "duration": 0, "cover_url": "x", "audio_url": "y"}, wantCode: http.StatusBadRequest},
		{name: "negative duration", body: map[string]any{"title": "A", "artist": "B", "album": "C", "duration": -5, "cover_url": "x", "audio_url": "y"}, wantCode: http.StatusBadRequest},
		{name: "missing cover_url", body: map[string]any{"title": "A", "artist": "B", "album": "C", "duration": 120, "audio_url": "y"}, wantCode: http.StatusBadRequest},
		{name: "missing audio_url", body: map[string]any{"title": "A", "artist": "B", "album": "C", "duration": 120, "cover_url": "x"}, wantCode: http.StatusBadRequest},
		{name: "valid", body: valid, wantCode: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeSongRepo{
				CreateSongFunc: func(ctx context.Context, song *model.Song) error {
					song.ID = "generated"
					song.CreatedAt = time.Now().UTC()
					return nil
				},
			}, nil, nil)

			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/songs", bytes.NewReader(payload))
			rr := httptest.NewRecorder()
			h.CreateSongHandler(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}

	t.Run("created song echoes input fields with generated id", func(t *testing.T) {
		h := newTestHandler(&fakeSongRepo{
			CreateSongFunc: func(ctx context.Context, song *model.Song) error {
				song.ID = "generated"
				song.CreatedAt = time.Now().UTC()
				return nil
			},
		}, nil, nil)

		payload, err := json.Marshal(valid)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/songs", bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		h.CreateSongHandler(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var got model.Song
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "generated", got.ID)
		assert.Equal(t, "A", got.Title)
		assert.Equal(t, "B", got.Artist)
		assert.Equal(t, "C", got.Album)
		assert.Equal(t, 120, got.Duration)
		assert.Equal(t, "x", got.CoverURL)
		assert.Equal(t, "y", got.AudioURL)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("invalid JSON is 400", func(t *testing.T) {
		h := newTestHandler(&fakeSongRepo{}, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/songs", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		h.CreateSongHandler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
