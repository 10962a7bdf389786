package model

import "time"

// Song represents a track in the catalog. Songs are immutable after creation.
type Song struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	Artist    string    `json:"artist" bson:"artist"`
	Album     string    `json:"album" bson:"album"`
	Duration  int       `json:"duration" bson:"duration"` // Duration in seconds
	CoverURL  string    `json:"cover_url" bson:"cover_url"`
	AudioURL  string    `json:"audio_url" bson:"audio_url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CreateSongRequest is the payload for POST /api/songs. All fields are required.
type CreateSongRequest struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Duration int    `json:"duration"`
	CoverURL string `json:"cover_url"`
	AudioURL string `json:"audio_url"`
}
