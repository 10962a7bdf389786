package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"E1FM/config"
	"E1FM/db"
	"E1FM/logger"
	"E1FM/repository"
)

// Start initializes and starts the HTTP server.
func Start(cfg *config.Config) {
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Connect to the document store
	if err := db.ConnectDB(cfg); err != nil {
		logger.Fatal("Failed to connect to database", logger.ErrorField(err))
	}
	defer db.CloseDB()

	// Ensure collection indexes
	if err := db.InitDB(); err != nil {
		logger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}

	songRepo := repository.NewMongoSongRepository(db.DB)
	playlistRepo := repository.NewMongoPlaylistRepository(db.DB)
	favoriteRepo := repository.NewMongoFavoriteRepository(db.DB)

	apiHandler := NewAPIHandler(songRepo, playlistRepo, favoriteRepo, cfg)

	router := mux.NewRouter()

	// Root and health endpoints
	router.HandleFunc("/api/", apiHandler.RootHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/health", apiHandler.HealthHandler).Methods(http.MethodGet)

	// Song endpoints
	router.HandleFunc("/api/songs", apiHandler.GetSongsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/songs", apiHandler.CreateSongHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/songs/{id}", apiHandler.GetSongHandler).Methods(http.MethodGet)

	// Playlist endpoints
	router.HandleFunc("/api/playlists", apiHandler.GetPlaylistsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/playlists", apiHandler.CreatePlaylistHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/playlists/{id}", apiHandler.GetPlaylistHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/playlists/{id}", apiHandler.DeletePlaylistHandler).Methods(http.MethodDelete)

	// Playlist membership endpoints
	router.HandleFunc("/api/playlists/{id}/songs", apiHandler.GetPlaylistSongsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/playlists/{id}/songs", apiHandler.AddSongToPlaylistHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/playlists/{id}/songs/{song_id}", apiHandler.RemoveSongFromPlaylistHandler).Methods(http.MethodDelete)

	// Favorite endpoints
	router.HandleFunc("/api/favorites", apiHandler.GetFavoritesHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/favorites", apiHandler.AddFavoriteHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/favorites/{song_id}", apiHandler.RemoveFavoriteHandler).Methods(http.MethodDelete)

	// Sample data bootstrap
	router.HandleFunc("/api/init-data", apiHandler.InitDataHandler).Methods(http.MethodPost)

	// CORS wraps the whole router so preflight requests are answered even
	// for method/path combinations mux would not otherwise match.
	server.Handler = corsMiddleware(cfg.CORSOrigins)(router)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", logger.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}

// corsMiddleware answers preflight requests and sets the CORS headers for
// the configured origins.
func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowAll := len(origins) == 0
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case allowed[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
