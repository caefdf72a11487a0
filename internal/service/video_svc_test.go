package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

func TestPublish_Validation(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewVideoService(st, composer, nil)
	owner := seedUser(t, st, "creator")

	_, err := svc.Publish(ctx, owner.ID, model.PublishVideoRequest{
		Title: "", VideoFile: "f", Thumbnail: "t",
	})
	assert.ErrorIs(t, err, store.ErrInvalidArgument)

	v, err := svc.Publish(ctx, owner.ID, model.PublishVideoRequest{
		Title: "clip", VideoFile: "f", Thumbnail: "t", Duration: 42,
	})
	require.NoError(t, err)
	assert.True(t, v.IsPublished)
	assert.Equal(t, owner.ID, v.OwnerID)
}

func TestWatch_IncrementsViewsAndHistory(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewVideoService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	watcher := seedUser(t, st, "watcher")
	v := seedVideo(t, st, owner.ID, "clip")

	detail, err := svc.Watch(ctx, v.ID, watcher.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Views)

	ids, err := st.Users.WatchHistoryIDs(ctx, watcher.ID)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, v.ID, ids[0])

	// Anonymous watch still counts a view but records no history.
	detail, err = svc.Watch(ctx, v.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.Views)
}

func TestWatch_MissingVideo(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewVideoService(st, composer, nil)

	_, err := svc.Watch(ctx, uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdate_OwnershipGate(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewVideoService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	intruder := seedUser(t, st, "intruder")
	v := seedVideo(t, st, owner.ID, "original title")

	newTitle := "hijacked"
	_, err := svc.Update(ctx, intruder.ID, v.ID, model.UpdateVideoRequest{Title: &newTitle})
	assert.ErrorIs(t, err, store.ErrForbidden)

	// Denied mutation must leave the row untouched.
	got, err := st.Videos.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "original title", got.Title)

	updated, err := svc.Update(ctx, owner.ID, v.ID, model.UpdateVideoRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "hijacked", updated.Title)
}

func TestDelete_OwnershipGate(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewVideoService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	intruder := seedUser(t, st, "intruder")
	v := seedVideo(t, st, owner.ID, "clip")

	assert.ErrorIs(t, svc.Delete(ctx, intruder.ID, v.ID), store.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, owner.ID, v.ID))
	_, err := st.Videos.GetByID(ctx, v.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTogglePublish(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewVideoService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	v := seedVideo(t, st, owner.ID, "clip")

	got, err := svc.TogglePublish(ctx, owner.ID, v.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublished)

	got, err = svc.TogglePublish(ctx, owner.ID, v.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPublished)
}
