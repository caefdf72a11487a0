package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/view"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

type SubscriptionService struct {
	st       *store.Store
	composer *view.Composer
	cache    *CacheService
}

func NewSubscriptionService(st *store.Store, composer *view.Composer, cache *CacheService) *SubscriptionService {
	return &SubscriptionService{st: st, composer: composer, cache: cache}
}

// Toggle flips the requester's subscription to a channel. Subscribing to
// yourself is rejected outright.
func (s *SubscriptionService) Toggle(ctx context.Context, requester, channelID uuid.UUID) (*model.ToggleResult, error) {
	if requester == channelID {
		return nil, fmt.Errorf("%w: cannot subscribe to your own channel", store.ErrInvalidArgument)
	}
	if _, err := s.st.Users.GetByID(ctx, channelID); err != nil {
		return nil, err
	}

	existing, err := s.st.Subscriptions.Find(ctx, requester, channelID)
	switch {
	case err == nil:
		if err := s.st.Subscriptions.Delete(ctx, existing.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		s.invalidate(ctx, channelID)
		return &model.ToggleResult{Created: false}, nil
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, err
	}

	sub := &model.Subscription{
		ID:           uuid.New(),
		SubscriberID: requester,
		ChannelID:    channelID,
		CreatedAt:    time.Now(),
	}
	if err := s.st.Subscriptions.Insert(ctx, sub); err != nil {
		// A racing subscribe already created the pair; same final state.
		if !errors.Is(err, store.ErrConflict) {
			return nil, err
		}
	}
	s.invalidate(ctx, channelID)
	return &model.ToggleResult{Created: true}, nil
}

// Subscribers lists who subscribes to a channel.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID uuid.UUID, p page.Params) (page.Page[view.SubscriberItem], error) {
	if _, err := s.st.Users.GetByID(ctx, channelID); err != nil {
		return page.Page[view.SubscriberItem]{}, err
	}
	return s.composer.ChannelSubscribers(ctx, channelID, p)
}

// SubscribedTo lists the channels a user subscribes to.
func (s *SubscriptionService) SubscribedTo(ctx context.Context, subscriberID uuid.UUID, p page.Params) (page.Page[view.SubscribedChannelItem], error) {
	if _, err := s.st.Users.GetByID(ctx, subscriberID); err != nil {
		return page.Page[view.SubscribedChannelItem]{}, err
	}
	return s.composer.SubscribedChannels(ctx, subscriberID, p)
}

func (s *SubscriptionService) invalidate(ctx context.Context, channelID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateChannel(ctx, channelID.String()); err != nil {
		log.Printf("cache: invalidate channel error: %v", err)
	}
}
