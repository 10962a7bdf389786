package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"E1FM/config"
	"E1FM/logger"
)

// Collection names. Each holds one entity type keyed by its public id.
const (
	SongsCollection     = "songs"
	PlaylistsCollection = "playlists"
	FavoritesCollection = "favorites"
)

var (
	client *mongo.Client

	// DB is the database handle shared by the repositories. Set by ConnectDB.
	DB *mongo.Database
)

// ConnectDB establishes the MongoDB connection and verifies it with a ping.
func ConnectDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	client = c
	DB = c.Database(cfg.DBName)
	logger.Info("Connected to MongoDB", logger.String("database", cfg.DBName))
	return nil
}

// CloseDB disconnects the MongoDB client.
func CloseDB() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect from MongoDB", logger.ErrorField(err))
	}
}

// InitDB creates the indexes the application relies on. The unique index on
// favorites.song_id is what turns a concurrent double-favorite into a
// duplicate key error instead of two documents.
func InitDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := DB.Collection(FavoritesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "song_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create favorites index: %w", err)
	}

	// Lookup indexes on the public id. Not unique: documents written under
	// older layouts may be missing the id field entirely.
	for _, name := range []string{SongsCollection, PlaylistsCollection} {
		_, err := DB.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "id", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("failed to create %s index: %w", name, err)
		}
	}

	logger.Info("Database indexes initialized")
	return nil
}
