package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"E1FM/db"
	"E1FM/logger"
	"E1FM/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in sample catalog",
	Long:  `Insert the sample songs and playlists into an empty database, then exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.ConnectDB(cfg); err != nil {
			return err
		}
		defer db.CloseDB()

		if err := db.InitDB(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		songRepo := repository.NewMongoSongRepository(db.DB)
		playlistRepo := repository.NewMongoPlaylistRepository(db.DB)

		seeded, err := repository.Seed(ctx, songRepo, playlistRepo)
		if err != nil {
			return err
		}
		if !seeded {
			logger.Info("Database already has data, nothing to seed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
