package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

func TestSubscriptionToggle_Involution(t *testing.T) {
	ctx := context.Background()
	mem, st, composer := newFixture()
	svc := NewSubscriptionService(st, composer, nil)

	channel := seedUser(t, st, "channel")
	sub := seedUser(t, st, "subscriber")

	res, err := svc.Toggle(ctx, sub.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, 1, mem.SubscriptionCount())

	res, err = svc.Toggle(ctx, sub.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, 0, mem.SubscriptionCount())
}

func TestSubscriptionToggle_SelfRejected(t *testing.T) {
	ctx := context.Background()
	mem, st, composer := newFixture()
	svc := NewSubscriptionService(st, composer, nil)

	u := seedUser(t, st, "loner")

	_, err := svc.Toggle(ctx, u.ID, u.ID)
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
	assert.Equal(t, 0, mem.SubscriptionCount(), "rejected toggle must not write")
}

func TestSubscriptionToggle_MissingChannel(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewSubscriptionService(st, composer, nil)
	sub := seedUser(t, st, "subscriber")

	_, err := svc.Toggle(ctx, sub.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubscribersAndSubscribedTo(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewSubscriptionService(st, composer, nil)

	channel := seedUser(t, st, "channel")
	s1 := seedUser(t, st, "s1")
	s2 := seedUser(t, st, "s2")

	for _, s := range []uuid.UUID{s1.ID, s2.ID} {
		_, err := svc.Toggle(ctx, s, channel.ID)
		require.NoError(t, err)
	}

	subs, err := svc.Subscribers(ctx, channel.ID, defaultParams())
	require.NoError(t, err)
	assert.Equal(t, 2, subs.TotalDocs)
	for _, item := range subs.Docs {
		require.NotNil(t, item.Subscriber)
	}

	channels, err := svc.SubscribedTo(ctx, s1.ID, defaultParams())
	require.NoError(t, err)
	require.Len(t, channels.Docs, 1)
	require.NotNil(t, channels.Docs[0].Channel)
	assert.Equal(t, "channel", channels.Docs[0].Channel.Username)
}
