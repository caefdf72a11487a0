package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/view"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

type TweetService struct {
	st       *store.Store
	composer *view.Composer
}

func NewTweetService(st *store.Store, composer *view.Composer) *TweetService {
	return &TweetService{st: st, composer: composer}
}

// Create posts a tweet for the requester.
func (s *TweetService) Create(ctx context.Context, owner uuid.UUID, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", store.ErrInvalidArgument)
	}

	now := time.Now()
	t := &model.Tweet{
		ID:        uuid.New(),
		Content:   content,
		OwnerID:   owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.st.Tweets.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListByUser lists a user's tweets with like aggregates.
func (s *TweetService) ListByUser(ctx context.Context, ownerID, viewer uuid.UUID, p page.Params) (page.Page[view.TweetItem], error) {
	if _, err := s.st.Users.GetByID(ctx, ownerID); err != nil {
		return page.Page[view.TweetItem]{}, err
	}
	return s.composer.UserTweets(ctx, ownerID, viewer, p)
}

// Update edits a tweet's content. Owner only.
func (s *TweetService) Update(ctx context.Context, requester, tweetID uuid.UUID, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", store.ErrInvalidArgument)
	}

	t, err := s.st.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(t.OwnerID, requester); err != nil {
		return nil, err
	}
	return s.st.Tweets.UpdateContent(ctx, tweetID, content)
}

// Delete removes a tweet. Owner only.
func (s *TweetService) Delete(ctx context.Context, requester, tweetID uuid.UUID) error {
	t, err := s.st.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if err := requireOwner(t.OwnerID, requester); err != nil {
		return err
	}
	return s.st.Tweets.Delete(ctx, tweetID)
}
