package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"E1FM/model"
)

// Stored documents predate the current field layout: some were written with
// the public id, some only carry Mongo's _id, timestamps exist both as BSON
// datetimes and as ISO strings, and optional fields may be missing outright.
// The normalize functions absorb all of that so the rest of the code only
// ever sees complete entities. A nil or empty document normalizes to nil,
// preserving not-found semantics.

func normalizeSong(doc bson.M) *model.Song {
	if len(doc) == 0 {
		return nil
	}
	return &model.Song{
		ID:        docID(doc),
		Title:     asString(doc["title"]),
		Artist:    asString(doc["artist"]),
		Album:     asString(doc["album"]),
		Duration:  asInt(doc["duration"]),
		CoverURL:  asString(doc["cover_url"]),
		AudioURL:  asString(doc["audio_url"]),
		CreatedAt: asTime(doc["created_at"]),
	}
}

func normalizePlaylist(doc bson.M) *model.Playlist {
	if len(doc) == 0 {
		return nil
	}
	return &model.Playlist{
		ID:          docID(doc),
		Name:        asString(doc["name"]),
		Description: asString(doc["description"]),
		CoverURL:    asString(doc["cover_url"]),
		SongIDs:     asStringSlice(doc["song_ids"]),
		CreatedAt:   asTime(doc["created_at"]),
	}
}

func normalizeFavorite(doc bson.M) *model.Favorite {
	if len(doc) == 0 {
		return nil
	}
	return &model.Favorite{
		ID:        docID(doc),
		SongID:    asString(doc["song_id"]),
		CreatedAt: asTime(doc["created_at"]),
	}
}

// docID returns the public identifier, falling back to the storage _id for
// documents written before the id field existed.
func docID(doc bson.M) string {
	if s := asString(doc["id"]); s != "" {
		return s
	}
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	}
	return ""
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	case string:
		// Legacy documents stored created_at as an ISO 8601 string.
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func asStringSlice(v interface{}) []string {
	out := []string{}
	switch vs := v.(type) {
	case primitive.A:
		for _, item := range vs {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, vs...)
	case []interface{}:
		for _, item := range vs {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
