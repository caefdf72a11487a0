package service

import (
	"context"
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

type CommentService struct {
	st       *store.Store
	composer *view.Composer
	cache    *CacheService
}

func NewCommentService(st *store.Store, composer *view.Composer, cache *CacheService) *CommentService {
	return &CommentService{st: st, composer: composer, cache: cache}
}

// Add posts a comment on a video. A vanished video surfaces as
// ErrInvalidReference from the store's foreign key.
func (s *CommentService) Add(ctx context.Context, requester, videoID uuid.UUID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", store.ErrInvalidArgument)
	}

	now := time.Now()
	c := &model.Comment{
		ID:        uuid.New(),
		Content:   content,
		VideoID:   videoID,
		OwnerID:   requester,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.st.Comments.Insert(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID)
	return c, nil
}

// List returns a video's comment thread with owner and like joins.
func (s *CommentService) List(ctx context.Context, videoID, viewer uuid.UUID, p page.Params) (page.Page[view.CommentItem], error) {
	// A missing video is a 404, not an empty thread.
	if _, err := s.st.Videos.GetByID(ctx, videoID); err != nil {
		return page.Page[view.CommentItem]{}, err
	}
	return s.composer.CommentsForVideo(ctx, videoID, viewer, p)
}

// Update edits a comment's content. Owner only.
func (s *CommentService) Update(ctx context.Context, requester, commentID uuid.UUID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", store.ErrInvalidArgument)
	}

	c, err := s.st.Comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(c.OwnerID, requester); err != nil {
		return nil, err
	}

	updated, err := s.st.Comments.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, c.VideoID)
	return updated, nil
}

// Delete removes a comment. Owner only.
func (s *CommentService) Delete(ctx context.Context, requester, commentID uuid.UUID) error {
	c, err := s.st.Comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := requireOwner(c.OwnerID, requester); err != nil {
		return err
	}
	if err := s.st.Comments.Delete(ctx, commentID); err != nil {
		return err
	}
	s.invalidate(ctx, c.VideoID)
	return nil
}

func (s *CommentService) invalidate(ctx context.Context, videoID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateVideo(ctx, videoID.String()); err != nil {
		log.Printf("cache: invalidate video error: %v", err)
	}
}
