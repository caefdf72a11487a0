package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/view"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

type VideoService struct {
	st       *store.Store
	composer *view.Composer
	cache    *CacheService
}

func NewVideoService(st *store.Store, composer *view.Composer, cache *CacheService) *VideoService {
	return &VideoService{st: st, composer: composer, cache: cache}
}

// Publish creates a video in the published state. File and thumbnail arrive
// as object-storage URLs produced by the upload pipeline.
func (s *VideoService) Publish(ctx context.Context, owner uuid.UUID, req model.PublishVideoRequest) (*model.Video, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.VideoFile == "" || req.Thumbnail == "" {
		return nil, fmt.Errorf("%w: title, videoFile and thumbnail are required", store.ErrInvalidArgument)
	}
	if req.Duration < 0 {
		return nil, fmt.Errorf("%w: duration cannot be negative", store.ErrInvalidArgument)
	}

	now := time.Now()
	v := &model.Video{
		ID:          uuid.New(),
		VideoFile:   req.VideoFile,
		Thumbnail:   req.Thumbnail,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		IsPublished: true,
		OwnerID:     owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.st.Videos.Insert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// List is the channel feed: an owner's published videos with owner and like
// joins, sorted and paginated per request.
func (s *VideoService) List(ctx context.Context, ownerID, viewer uuid.UUID, p page.Params) (page.Page[view.VideoCard], error) {
	if ownerID == uuid.Nil {
		return page.Page[view.VideoCard]{}, fmt.Errorf("%w: userId is required", store.ErrInvalidArgument)
	}
	return s.composer.VideoList(ctx, ownerID, viewer, p)
}

// Watch serves the watch page: it bumps the view counter, records the watch
// in the viewer's history, then composes the detail view. Anonymous detail
// goes through the cache; the counter still moves on every watch.
func (s *VideoService) Watch(ctx context.Context, videoID, viewer uuid.UUID) (*view.VideoDetail, error) {
	if _, err := s.st.Videos.IncrementViews(ctx, videoID); err != nil {
		return nil, err
	}
	if viewer != uuid.Nil {
		if err := s.st.Users.AddWatchHistory(ctx, viewer, videoID); err != nil {
			log.Printf("watch history: append error: %v", err)
		}
	}

	cacheable := viewer == uuid.Nil && s.cache != nil
	if cacheable {
		cached, err := s.cache.GetVideo(ctx, videoID.String())
		if err != nil {
			log.Printf("cache: video get error: %v", err)
		} else if cached != nil {
			var detail view.VideoDetail
			if err := json.Unmarshal(cached, &detail); err == nil {
				return &detail, nil
			}
		}
	}

	detail, err := s.composer.VideoDetail(ctx, videoID, viewer)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.SetVideo(ctx, videoID.String(), detail); err != nil {
			log.Printf("cache: video set error: %v", err)
		}
	}
	return detail, nil
}

// Update patches a video's mutable fields. Owner only.
func (s *VideoService) Update(ctx context.Context, requester, videoID uuid.UUID, req model.UpdateVideoRequest) (*model.Video, error) {
	v, err := s.st.Videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(v.OwnerID, requester); err != nil {
		return nil, err
	}
	if req.Title == nil && req.Description == nil && req.Thumbnail == nil {
		return nil, fmt.Errorf("%w: at least one field is required", store.ErrInvalidArgument)
	}

	updated, err := s.st.Videos.UpdateFields(ctx, videoID, store.VideoUpdate{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID)
	return updated, nil
}

// Delete removes a video. Owner only.
func (s *VideoService) Delete(ctx context.Context, requester, videoID uuid.UUID) error {
	v, err := s.st.Videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if err := requireOwner(v.OwnerID, requester); err != nil {
		return err
	}
	if err := s.st.Videos.Delete(ctx, videoID); err != nil {
		return err
	}
	s.invalidate(ctx, videoID)
	return nil
}

// TogglePublish flips the publish flag. Owner only.
func (s *VideoService) TogglePublish(ctx context.Context, requester, videoID uuid.UUID) (*model.Video, error) {
	v, err := s.st.Videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(v.OwnerID, requester); err != nil {
		return nil, err
	}
	updated, err := s.st.Videos.SetPublished(ctx, videoID, !v.IsPublished)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID)
	return updated, nil
}

func (s *VideoService) invalidate(ctx context.Context, videoID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateVideo(ctx, videoID.String()); err != nil {
		log.Printf("cache: invalidate video error: %v", err)
	}
}
