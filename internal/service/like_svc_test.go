package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

func TestToggleVideo_Involution(t *testing.T) {
	ctx := context.Background()
	mem, st, composer := newFixture()
	svc := NewLikeService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	liker := seedUser(t, st, "liker")
	v := seedVideo(t, st, owner.ID, "clip")

	res, err := svc.ToggleVideo(ctx, liker.ID, v.ID)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, 1, mem.LikeCount())

	res, err = svc.ToggleVideo(ctx, liker.ID, v.ID)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, 0, mem.LikeCount(), "two toggles must restore the original state")
}

func TestToggleVideo_MissingVideo(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewLikeService(st, composer, nil)
	liker := seedUser(t, st, "liker")

	_, err := svc.ToggleVideo(ctx, liker.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// A racing toggle that loses the insert to the uniqueness guarantee settles
// on "present" instead of surfacing the conflict.
func TestToggleVideo_ConflictSettlesPresent(t *testing.T) {
	ctx := context.Background()
	mem, st, composer := newFixture()
	svc := NewLikeService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	liker := seedUser(t, st, "liker")
	v := seedVideo(t, st, owner.ID, "clip")

	mem.FailLikeInsertWith = store.ErrConflict
	res, err := svc.ToggleVideo(ctx, liker.ID, v.ID)
	require.NoError(t, err)
	assert.True(t, res.Created)
}

func TestToggleComment(t *testing.T) {
	ctx := context.Background()
	mem, st, composer := newFixture()
	svc := NewLikeService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	liker := seedUser(t, st, "liker")
	v := seedVideo(t, st, owner.ID, "clip")
	c := seedComment(t, st, v.ID, owner.ID, "hello")

	res, err := svc.ToggleComment(ctx, liker.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, 1, mem.LikeCount())

	_, err = svc.ToggleComment(ctx, liker.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestToggleTweet(t *testing.T) {
	ctx := context.Background()
	mem, st, composer := newFixture()
	svc := NewLikeService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	liker := seedUser(t, st, "liker")
	tw := model.Tweet{ID: uuid.New(), Content: "hi", OwnerID: owner.ID, CreatedAt: time.Now()}
	require.NoError(t, st.Tweets.Insert(ctx, &tw))

	res, err := svc.ToggleTweet(ctx, liker.ID, tw.ID)
	require.NoError(t, err)
	assert.True(t, res.Created)

	res, err = svc.ToggleTweet(ctx, liker.ID, tw.ID)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, 0, mem.LikeCount())
}

// The store holds at most one like per (liker, target); a duplicate insert
// is rejected outright.
func TestLikeUniqueness(t *testing.T) {
	ctx := context.Background()
	_, st, _ := newFixture()

	owner := seedUser(t, st, "creator")
	liker := seedUser(t, st, "liker")
	v := seedVideo(t, st, owner.ID, "clip")

	videoID := v.ID
	first := model.Like{ID: uuid.New(), LikedBy: liker.ID, VideoID: &videoID, CreatedAt: time.Now()}
	require.NoError(t, st.Likes.Insert(ctx, &first))

	dup := model.Like{ID: uuid.New(), LikedBy: liker.ID, VideoID: &videoID, CreatedAt: time.Now()}
	assert.ErrorIs(t, st.Likes.Insert(ctx, &dup), store.ErrConflict)
}

func TestLikedVideos(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewLikeService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	liker := seedUser(t, st, "liker")
	v := seedVideo(t, st, owner.ID, "clip")

	_, err := svc.ToggleVideo(ctx, liker.ID, v.ID)
	require.NoError(t, err)

	pg, err := svc.LikedVideos(ctx, liker.ID, defaultParams())
	require.NoError(t, err)
	require.Len(t, pg.Docs, 1)
	assert.Equal(t, v.ID, pg.Docs[0].ID)
	assert.True(t, pg.Docs[0].IsLiked)
}
