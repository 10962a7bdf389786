package cmd

import (
	"github.com/spf13/cobra"

	"E1FM/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the E1 Music API server",
	Long:  `Start the HTTP server exposing the songs, playlists, and favorites API.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
