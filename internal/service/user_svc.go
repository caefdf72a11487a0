package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/view"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

type UserService struct {
	users    store.Users
	composer *view.Composer
	cache    *CacheService
}

func NewUserService(users store.Users, composer *view.Composer, cache *CacheService) *UserService {
	return &UserService{users: users, composer: composer, cache: cache}
}

// Current returns the requester's own account.
func (s *UserService) Current(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile patches the requester's mutable profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.User, error) {
	if req.FullName == nil && req.Avatar == nil && req.CoverImage == nil {
		return nil, fmt.Errorf("%w: at least one field is required", store.ErrInvalidArgument)
	}
	u, err := s.users.UpdateFields(ctx, userID, store.UserUpdate{
		FullName:   req.FullName,
		Avatar:     req.Avatar,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateChannel(ctx, userID.String()); err != nil {
			log.Printf("cache: invalidate channel error: %v", err)
		}
	}
	return u, nil
}

// ChannelProfile resolves a username to its channel profile view. Anonymous
// profiles (no membership flag to personalize) go through the cache.
func (s *UserService) ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*view.ChannelProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", store.ErrInvalidArgument)
	}

	u, err := s.users.GetByUsernameOrEmail(ctx, username, "")
	if err != nil {
		return nil, err
	}

	cacheable := viewer == uuid.Nil && s.cache != nil
	if cacheable {
		cached, err := s.cache.GetChannel(ctx, u.ID.String())
		if err != nil {
			log.Printf("cache: channel get error: %v", err)
		} else if cached != nil {
			var profile view.ChannelProfile
			if err := json.Unmarshal(cached, &profile); err == nil {
				return &profile, nil
			}
		}
	}

	profile, err := s.composer.ChannelProfile(ctx, u.ID, viewer)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.SetChannel(ctx, u.ID.String(), profile); err != nil {
			log.Printf("cache: channel set error: %v", err)
		}
	}
	return profile, nil
}

// WatchHistory lists the requester's watched videos, most recent first.
func (s *UserService) WatchHistory(ctx context.Context, userID uuid.UUID, p page.Params) (page.Page[view.VideoCard], error) {
	return s.composer.WatchHistory(ctx, userID, p)
}
