package repository

import (
	"context"
	"fmt"

	"E1FM/logger"
	"E1FM/model"
)

var sampleSongs = []model.Song{
	{Title: "Neon Dreams", Artist: "Synthwave Collective", Album: "Electric Nights", Duration: 245,
		CoverURL: "https://images.unsplash.com/photo-1764936510087-e113d6da4af9?crop=entropy&cs=srgb&fm=jpg&q=85",
		AudioURL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3"},
	{Title: "Midnight City", Artist: "Urban Echo", Album: "City Lights", Duration: 198,
		CoverURL: "https://images.unsplash.com/photo-1760574765516-3e12ccb32073?crop=entropy&cs=srgb&fm=jpg&q=85",
		AudioURL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3"},
	{Title: "Retro Wave", Artist: "Neon Pulse", Album: "80s Revival", Duration: 223,
		CoverURL: "https://images.unsplash.com/photo-1767481626894-bab78ae919be?crop=entropy&cs=srgb&fm=jpg&q=85",
		AudioURL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3"},
	{Title: "Digital Love", Artist: "Cyber Hearts", Album: "Virtual Romance", Duration: 267,
		CoverURL: "https://images.unsplash.com/photo-1749222200222-93399b2b65dd?crop=entropy&cs=srgb&fm=jpg&q=85",
		AudioURL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-4.mp3"},
	{Title: "Cosmic Journey", Artist: "Space Travelers", Album: "Beyond Stars", Duration: 301,
		CoverURL: "https://images.unsplash.com/photo-1748854091034-abd9d3ea6be8?crop=entropy&cs=srgb&fm=jpg&q=85",
		AudioURL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-5.mp3"},
	{Title: "Pulse", Artist: "Beat Makers", Album: "Rhythm Nation", Duration: 189,
		CoverURL: "https://images.unsplash.com/photo-1764936510087-e113d6da4af9?crop=entropy&cs=srgb&fm=jpg&q=85",
		AudioURL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-6.mp3"},
	{Title: "Echoes", Artist: "Sound Waves", Album: "Reflections", Duration: 234,
		CoverURL: "https://images.unsplash.com/photo-1760574765516-3e12ccb32073?crop=entropy&cs=srgb&fm=jpg&q=85",
		AudioURL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-7.mp3"},
	{Title: "Velocity", Artist: "Fast Lane", Album: "Speed of Sound", Duration: 212,
		CoverURL: "https://images.unsplash.com/photo-1767481626894-bab78ae919be?crop=entropy&cs=srgb&fm=jpg&q=85",
		AudioURL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-8.mp3"},
}

var samplePlaylists = []struct {
	playlist model.Playlist
	songIdx  []int
}{
	{
		playlist: model.Playlist{
			Name:        "Synthwave Essentials",
			Description: "The best synthwave tracks",
			CoverURL:    "https://images.unsplash.com/photo-1764936510087-e113d6da4af9?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		songIdx: []int{0, 2},
	},
	{
		playlist: model.Playlist{
			Name:        "Night Drive",
			Description: "Perfect playlist for late night drives",
			CoverURL:    "https://images.unsplash.com/photo-1760574765516-3e12ccb32073?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		songIdx: []int{1, 3},
	},
}

// Seed inserts the built-in sample catalog. It is a no-op when the songs
// collection already has data, so calling it repeatedly is safe.
// Returns true when data was actually inserted.
func Seed(ctx context.Context, songs SongRepository, playlists PlaylistRepository) (bool, error) {
	existing, err := songs.ListSongs(ctx, "")
	if err != nil {
		return false, fmt.Errorf("failed to check for existing songs: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	created := make([]model.Song, len(sampleSongs))
	for i, sample := range sampleSongs {
		song := sample
		if err := songs.CreateSong(ctx, &song); err != nil {
			return false, err
		}
		created[i] = song
	}

	for _, sample := range samplePlaylists {
		playlist := sample.playlist
		if err := playlists.CreatePlaylist(ctx, &playlist); err != nil {
			return false, err
		}
		for _, idx := range sample.songIdx {
			if err := playlists.AddSong(ctx, playlist.ID, created[idx].ID); err != nil {
				return false, err
			}
		}
	}

	logger.Info("Sample data initialized",
		logger.Int("songs", len(sampleSongs)),
		logger.Int("playlists", len(samplePlaylists)),
	)
	return true, nil
}
