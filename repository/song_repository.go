package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"E1FM/db"
	"E1FM/logger"
	"E1FM/model"
)

// maxListResults caps every collection listing.
const maxListResults = 1000

// SongRepository defines the interface for song data operations.
type SongRepository interface {
	ListSongs(ctx context.Context, search string) ([]*model.Song, error)
	GetSongByID(ctx context.Context, id string) (*model.Song, error)
	CreateSong(ctx context.Context, song *model.Song) error
}

// mongoSongRepository implements SongRepository on the songs collection.
type mongoSongRepository struct {
	col *mongo.Collection
}

// NewMongoSongRepository creates a new instance of mongoSongRepository.
func NewMongoSongRepository(database *mongo.Database) SongRepository {
	return &mongoSongRepository{col: database.Collection(db.SongsCollection)}
}

// ListSongs returns all songs, or with a non-empty search term only the
// songs whose title, artist, or album contains the term case-insensitively.
func (r *mongoSongRepository) ListSongs(ctx context.Context, search string) ([]*model.Song, error) {
	filter := bson.M{}
	if search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter = bson.M{"$or": []bson.M{
			{"title": re},
			{"artist": re},
			{"album": re},
		}}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(maxListResults))
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	defer cur.Close(ctx)

	songs := []*model.Song{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode song document: %w", err)
		}
		if song := normalizeSong(doc); song != nil {
			songs = append(songs, song)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate songs: %w", err)
	}
	return songs, nil
}

// GetSongByID returns the song with the given public id, or model.ErrNotFound.
func (r *mongoSongRepository) GetSongByID(ctx context.Context, id string) (*model.Song, error) {
	var doc bson.M
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get song %s: %w", id, err)
	}
	return normalizeSong(doc), nil
}

// CreateSong assigns the song a new id and creation time and persists it.
func (r *mongoSongRepository) CreateSong(ctx context.Context, song *model.Song) error {
	song.ID = uuid.NewString()
	song.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, song); err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}
	logger.Info("Song created",
		logger.String("songId", song.ID),
		logger.String("title", song.Title),
	)
	return nil
}
