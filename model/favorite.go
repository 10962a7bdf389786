package model

import "time"

// Favorite marks a single song as favorited. At most one favorite exists
// per song id, enforced by a unique index on the favorites collection.
type Favorite struct {
	ID        string    `json:"id" bson:"id"`
	SongID    string    `json:"song_id" bson:"song_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CreateFavoriteRequest is the payload for POST /api/favorites.
type CreateFavoriteRequest struct {
	SongID string `json:"song_id"`
}
