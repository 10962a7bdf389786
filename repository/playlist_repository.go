package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"E1FM/db"
	"E1FM/logger"
	"E1FM/model"
)

// PlaylistRepository defines the interface for playlist data operations,
// including membership of songs in a playlist.
type PlaylistRepository interface {
	ListPlaylists(ctx context.Context) ([]*model.Playlist, error)
	GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error)
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	DeletePlaylist(ctx context.Context, id string) error
	AddSong(ctx context.Context, playlistID, songID string) error
	RemoveSong(ctx context.Context, playlistID, songID string) error
}

// mongoPlaylistRepository implements PlaylistRepository on the playlists collection.
type mongoPlaylistRepository struct {
	col *mongo.Collection
}

// NewMongoPlaylistRepository creates a new instance of mongoPlaylistRepository.
func NewMongoPlaylistRepository(database *mongo.Database) PlaylistRepository {
	return &mongoPlaylistRepository{col: database.Collection(db.PlaylistsCollection)}
}

// ListPlaylists returns all playlists including their song id collections.
func (r *mongoPlaylistRepository) ListPlaylists(ctx context.Context) ([]*model.Playlist, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(maxListResults))
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer cur.Close(ctx)

	playlists := []*model.Playlist{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode playlist document: %w", err)
		}
		if playlist := normalizePlaylist(doc); playlist != nil {
			playlists = append(playlists, playlist)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate playlists: %w", err)
	}
	return playlists, nil
}

// GetPlaylistByID returns the playlist with the given public id, or model.ErrNotFound.
func (r *mongoPlaylistRepository) GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error) {
	var doc bson.M
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist %s: %w", id, err)
	}
	return normalizePlaylist(doc), nil
}

// CreatePlaylist assigns the playlist a new id, creation time, and an empty
// song collection, then persists it.
func (r *mongoPlaylistRepository) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	playlist.ID = uuid.NewString()
	playlist.CreatedAt = time.Now().UTC()
	if playlist.SongIDs == nil {
		playlist.SongIDs = []string{}
	}

	if _, err := r.col.InsertOne(ctx, playlist); err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}
	logger.Info("Playlist created",
		logger.String("playlistId", playlist.ID),
		logger.String("name", playlist.Name),
	)
	return nil
}

// DeletePlaylist removes the playlist record only. Referenced songs and
// favorites are independent entities and stay untouched.
func (r *mongoPlaylistRepository) DeletePlaylist(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete playlist %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	logger.Info("Playlist deleted", logger.String("playlistId", id))
	return nil
}

// AddSong appends songID to the playlist's song collection. The filter
// matches only when the song is not yet a member, so the check and the
// append are a single atomic write: two concurrent adds of the same song
// cannot both match. Returns model.ErrDuplicate when the song is already a
// member and model.ErrNotFound when the playlist does not exist.
func (r *mongoPlaylistRepository) AddSong(ctx context.Context, playlistID, songID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": playlistID, "song_ids": bson.M{"$ne": songID}},
		bson.M{"$push": bson.M{"song_ids": songID}},
	)
	if err != nil {
		return fmt.Errorf("failed to add song %s to playlist %s: %w", songID, playlistID, err)
	}
	if res.MatchedCount == 0 {
		// Either the playlist is missing or the song is already a member.
		n, err := r.col.CountDocuments(ctx, bson.M{"id": playlistID})
		if err != nil {
			return fmt.Errorf("failed to check playlist %s: %w", playlistID, err)
		}
		if n == 0 {
			return model.ErrNotFound
		}
		return model.ErrDuplicate
	}
	return nil
}

// RemoveSong removes songID from the playlist's song collection. A missing
// playlist and a song that was never a member both report model.ErrNotFound.
func (r *mongoPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": playlistID},
		bson.M{"$pull": bson.M{"song_ids": songID}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove song %s from playlist %s: %w", songID, playlistID, err)
	}
	if res.MatchedCount == 0 || res.ModifiedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
