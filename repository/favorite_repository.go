package repository

import (
	"context"
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

// FavoriteRepository defines the interface for favorite data operations.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context) ([]*model.Favorite, error)
	CreateFavorite(ctx context.Context, favorite *model.Favorite) error
	DeleteFavoriteBySongID(ctx context.Context, songID string) error
}

// mongoFavoriteRepository implements FavoriteRepository on the favorites collection.
type mongoFavoriteRepository struct {
	col *mongo.Collection
}

// NewMongoFavoriteRepository creates a new instance of mongoFavoriteRepository.
func NewMongoFavoriteRepository(database *mongo.Database) FavoriteRepository {
	return &mongoFavoriteRepository{col: database.Collection(db.FavoritesCollection)}
}

// ListFavorites returns all favorites.
func (r *mongoFavoriteRepository) ListFavorites(ctx context.Context) ([]*model.Favorite, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(maxListResults))
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer cur.Close(ctx)

	favorites := []*model.Favorite{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode favorite document: %w", err)
		}
		if favorite := normalizeFavorite(doc); favorite != nil {
			favorites = append(favorites, favorite)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}
	return favorites, nil
}

// CreateFavorite assigns the favorite a new id and creation time and
// persists it. The unique index on song_id makes a concurrent duplicate
// surface as a duplicate key error, reported as model.ErrDuplicate.
func (r *mongoFavoriteRepository) CreateFavorite(ctx context.Context, favorite *model.Favorite) error {
	favorite.ID = uuid.NewString()
	favorite.CreatedAt = time.Now().UTC()

	_, err := r.col.InsertOne(ctx, favorite)
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	logger.Info("Favorite created",
		logger.String("favoriteId", favorite.ID),
		logger.String("songId", favorite.SongID),
	)
	return nil
}

// DeleteFavoriteBySongID deletes the favorite referencing songID, or
// reports model.ErrNotFound when no favorite matched.
func (r *mongoFavoriteRepository) DeleteFavoriteBySongID(ctx context.Context, songID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"song_id": songID})
	if err != nil {
		return fmt.Errorf("failed to delete favorite for song %s: %w", songID, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	logger.Info("Favorite removed", logger.String("songId", songID))
	return nil
}
