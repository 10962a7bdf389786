package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"E1FM/config"
	"E1FM/logger"
	"E1FM/server"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "e1fm_server",
	Short: "E1FM is the E1 Music catalog API service.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger.Init(logger.Config{
			Level:      cfg.LogLevel,
			OutputPath: cfg.LogPath,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		server.Start(cfg)
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
