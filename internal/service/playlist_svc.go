package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/view"
)

type PlaylistService struct {
	st       *store.Store
	composer *view.Composer
}

func NewPlaylistService(st *store.Store, composer *view.Composer) *PlaylistService {
	return &PlaylistService{st: st, composer: composer}
}

// Create makes an empty playlist owned by the requester.
func (s *PlaylistService) Create(ctx context.Context, owner uuid.UUID, req model.PlaylistRequest) (*model.Playlist, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", store.ErrInvalidArgument)
	}

	now := time.Now()
	p := &model.Playlist{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.st.Playlists.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListByUser lists a user's playlists, newest first.
func (s *PlaylistService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Playlist, error) {
	return s.st.Playlists.ListByOwner(ctx, userID)
}

// Get returns a playlist joined with its member video cards.
func (s *PlaylistService) Get(ctx context.Context, playlistID, viewer uuid.UUID) (*view.PlaylistDetail, error) {
	return s.composer.PlaylistDetail(ctx, playlistID, viewer)
}

// Update renames or re-describes a playlist. Owner only.
func (s *PlaylistService) Update(ctx context.Context, requester, playlistID uuid.UUID, req model.PlaylistRequest) (*model.Playlist, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" && req.Description == "" {
		return nil, fmt.Errorf("%w: name or description is required", store.ErrInvalidArgument)
	}

	p, err := s.st.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(p.OwnerID, requester); err != nil {
		return nil, err
	}

	upd := store.PlaylistUpdate{}
	if req.Name != "" {
		upd.Name = &req.Name
	}
	if req.Description != "" {
		upd.Description = &req.Description
	}
	return s.st.Playlists.UpdateFields(ctx, playlistID, upd)
}

// Delete removes a playlist and its memberships. Owner only.
func (s *PlaylistService) Delete(ctx context.Context, requester, playlistID uuid.UUID) error {
	p, err := s.st.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if err := requireOwner(p.OwnerID, requester); err != nil {
		return err
	}
	return s.st.Playlists.Delete(ctx, playlistID)
}

// AddVideo puts a video into a playlist. Owner only; adding a video that is
// already a member is a no-op success.
func (s *PlaylistService) AddVideo(ctx context.Context, requester, playlistID, videoID uuid.UUID) error {
	p, err := s.st.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if err := requireOwner(p.OwnerID, requester); err != nil {
		return err
	}
	if _, err := s.st.Videos.GetByID(ctx, videoID); err != nil {
		return err
	}

	if err := s.st.Playlists.AddVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil
		}
		return err
	}
	return nil
}

// RemoveVideo takes a video out of a playlist. Owner only.
func (s *PlaylistService) RemoveVideo(ctx context.Context, requester, playlistID, videoID uuid.UUID) error {
	p, err := s.st.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if err := requireOwner(p.OwnerID, requester); err != nil {
		return err
	}
	return s.st.Playlists.RemoveVideo(ctx, playlistID, videoID)
}
