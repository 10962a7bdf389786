package model

import "time"

// Playlist holds playlist metadata plus the ids of its member songs.
// SongIDs never contains duplicates; membership is managed through the
// playlist repository, not by mutating the struct.
type Playlist struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	CoverURL    string    `json:"cover_url" bson:"cover_url"`
	SongIDs     []string  `json:"song_ids" bson:"song_ids"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// CreatePlaylistRequest is the payload for POST /api/playlists.
// Description is optional and defaults to the empty string.
type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
}

// AddSongRequest is the payload for POST /api/playlists/{id}/songs.
type AddSongRequest struct {
	SongID string `json:"song_id"`
}
