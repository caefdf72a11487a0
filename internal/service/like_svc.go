package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/view"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

// LikeService runs the like toggle for all three target kinds. The protocol
// is find-existing, then delete-or-insert; the store's uniqueness guarantee
// settles races.
type LikeService struct {
	st       *store.Store
	composer *view.Composer
	cache    *CacheService
}

func NewLikeService(st *store.Store, composer *view.Composer, cache *CacheService) *LikeService {
	return &LikeService{st: st, composer: composer, cache: cache}
}

// ToggleVideo flips the requester's like on a video.
func (s *LikeService) ToggleVideo(ctx context.Context, requester, videoID uuid.UUID) (*model.ToggleResult, error) {
	if _, err := s.st.Videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	res, err := s.toggle(ctx,
		func() (*model.Like, error) { return s.st.Likes.FindVideoLike(ctx, requester, videoID) },
		func(l *model.Like) { l.VideoID = &videoID },
		requester)
	if err == nil {
		s.invalidate(ctx, videoID)
	}
	return res, err
}

// ToggleComment flips the requester's like on a comment.
func (s *LikeService) ToggleComment(ctx context.Context, requester, commentID uuid.UUID) (*model.ToggleResult, error) {
	c, err := s.st.Comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	res, err := s.toggle(ctx,
		func() (*model.Like, error) { return s.st.Likes.FindCommentLike(ctx, requester, commentID) },
		func(l *model.Like) { l.CommentID = &commentID },
		requester)
	if err == nil {
		s.invalidate(ctx, c.VideoID)
	}
	return res, err
}

// ToggleTweet flips the requester's like on a tweet.
func (s *LikeService) ToggleTweet(ctx context.Context, requester, tweetID uuid.UUID) (*model.ToggleResult, error) {
	if _, err := s.st.Tweets.GetByID(ctx, tweetID); err != nil {
		return nil, err
	}
	return s.toggle(ctx,
		func() (*model.Like, error) { return s.st.Likes.FindTweetLike(ctx, requester, tweetID) },
		func(l *model.Like) { l.TweetID = &tweetID },
		requester)
}

// LikedVideos lists the videos the requester has liked, newest like first.
func (s *LikeService) LikedVideos(ctx context.Context, requester uuid.UUID, p page.Params) (page.Page[view.VideoCard], error) {
	return s.composer.LikedVideos(ctx, requester, p)
}

// toggle is the shared state machine: an existing row is deleted (final
// state absent), a missing row is inserted (final state present). A racing
// insert that loses to the uniqueness guarantee still means the relation
// exists, so the toggle settles on present rather than failing.
func (s *LikeService) toggle(ctx context.Context, find func() (*model.Like, error), setTarget func(*model.Like), requester uuid.UUID) (*model.ToggleResult, error) {
	existing, err := find()
	switch {
	case err == nil:
		if err := s.st.Likes.Delete(ctx, existing.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		// A concurrent delete of the same row still ends absent.
		return &model.ToggleResult{Created: false}, nil
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, err
	}

	l := &model.Like{
		ID:        uuid.New(),
		LikedBy:   requester,
		CreatedAt: time.Now(),
	}
	setTarget(l)
	if err := s.st.Likes.Insert(ctx, l); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return &model.ToggleResult{Created: true}, nil
		}
		return nil, err
	}
	return &model.ToggleResult{Created: true}, nil
}

func (s *LikeService) invalidate(ctx context.Context, videoID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateVideo(ctx, videoID.String()); err != nil {
		log.Printf("cache: invalidate video error: %v", err)
	}
}
