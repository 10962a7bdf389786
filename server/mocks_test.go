package server

import (
	"context"

	"E1FM/config"
	"E1FM/model"
)

// Function-field fakes for the repository interfaces. Unset fields return
// empty results so each test only wires the calls it cares about.

type fakeSongRepo struct {
	ListSongsFunc   func(ctx context.Context, search string) ([]*model.Song, error)
	GetSongByIDFunc func(ctx context.Context, id string) (*model.Song, error)
	CreateSongFunc  func(ctx context.Context, song *model.Song) error
}

func (f *fakeSongRepo) ListSongs(ctx context.Context, search string) ([]*model.Song, error) {
	if f.ListSongsFunc != nil {
		return f.ListSongsFunc(ctx, search)
	}
	return []*model.Song{}, nil
}

func (f *fakeSongRepo) GetSongByID(ctx context.Context, id string) (*model.Song, error) {
	if f.GetSongByIDFunc != nil {
		return f.GetSongByIDFunc(ctx, id)
	}
	return nil, model.ErrNotFound
}

func (f *fakeSongRepo) CreateSong(ctx context.Context, song *model.Song) error {
	if f.CreateSongFunc != nil {
		return f.CreateSongFunc(ctx, song)
	}
	return nil
}

type fakePlaylistRepo struct {
	ListPlaylistsFunc   func(ctx context.Context) ([]*model.Playlist, error)
	GetPlaylistByIDFunc func(ctx context.Context, id string) (*model.Playlist, error)
	CreatePlaylistFunc  func(ctx context.Context, playlist *model.Playlist) error
	DeletePlaylistFunc  func(ctx context.Context, id string) error
	AddSongFunc         func(ctx context.Context, playlistID, songID string) error
	RemoveSongFunc      func(ctx context.Context, playlistID, songID string) error
}

func (f *fakePlaylistRepo) ListPlaylists(ctx context.Context) ([]*model.Playlist, error) {
	if f.ListPlaylistsFunc != nil {
		return f.ListPlaylistsFunc(ctx)
	}
	return []*model.Playlist{}, nil
}

func (f *fakePlaylistRepo) GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error) {
	if f.GetPlaylistByIDFunc != nil {
		return f.GetPlaylistByIDFunc(ctx, id)
	}
	return nil, model.ErrNotFound
}

func (f *fakePlaylistRepo) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if f.CreatePlaylistFunc != nil {
		return f.CreatePlaylistFunc(ctx, playlist)
	}
	return nil
}

func (f *fakePlaylistRepo) DeletePlaylist(ctx context.Context, id string) error {
	if f.DeletePlaylistFunc != nil {
		return f.DeletePlaylistFunc(ctx, id)
	}
	return nil
}

func (f *fakePlaylistRepo) AddSong(ctx context.Context, playlistID, songID string) error {
	if f.AddSongFunc != nil {
		return f.AddSongFunc(ctx, playlistID, songID)
	}
	return nil
}

func (f *fakePlaylistRepo) RemoveSong(ctx context.Context, playlistID, songID string) error {
	if f.RemoveSongFunc != nil {
		return f.RemoveSongFunc(ctx, playlistID, songID)
	}
	return nil
}

type fakeFavoriteRepo struct {
	ListFavoritesFunc          func(ctx context.Context) ([]*model.Favorite, error)
	CreateFavoriteFunc         func(ctx context.Context, favorite *model.Favorite) error
	DeleteFavoriteBySongIDFunc func(ctx context.Context, songID string) error
}

func (f *fakeFavoriteRepo) ListFavorites(ctx context.Context) ([]*model.Favorite, error) {
	if f.ListFavoritesFunc != nil {
		return f.ListFavoritesFunc(ctx)
	}
	return []*model.Favorite{}, nil
}

func (f *fakeFavoriteRepo) CreateFavorite(ctx context.Context, favorite *model.Favorite) error {
	if f.CreateFavoriteFunc != nil {
		return f.CreateFavoriteFunc(ctx, favorite)
	}
	return nil
}

func (f *fakeFavoriteRepo) DeleteFavoriteBySongID(ctx context.Context, songID string) error {
	if f.DeleteFavoriteBySongIDFunc != nil {
		return f.DeleteFavoriteBySongIDFunc(ctx, songID)
	}
	return nil
}

func newTestHandler(songs *fakeSongRepo, playlists *fakePlaylistRepo, favorites *fakeFavoriteRepo) *APIHandler {
	if songs == nil {
		songs = &fakeSongRepo{}
	}
	if playlists == nil {
		playlists = &fakePlaylistRepo{}
	}
	if favorites == nil {
		favorites = &fakeFavoriteRepo{}
	}
	return NewAPIHandler(songs, playlists, favorites, &config.Config{})
}
