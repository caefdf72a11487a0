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

func TestPlaylistAddVideo_DuplicateIsNoOp(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewPlaylistService(st, composer)

	owner := seedUser(t, st, "creator")
	v := seedVideo(t, st, owner.ID, "clip")
	pl, err := svc.Create(ctx, owner.ID, model.PlaylistRequest{Name: "favorites"})
	require.NoError(t, err)

	require.NoError(t, svc.AddVideo(ctx, owner.ID, pl.ID, v.ID))
	require.NoError(t, svc.AddVideo(ctx, owner.ID, pl.ID, v.ID), "re-adding must succeed as a no-op")

	ids, err := st.Playlists.VideoIDs(ctx, pl.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 1, "membership is a set")
}

func TestPlaylistRemoveVideo_MissingMembership(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewPlaylistService(st, composer)

	owner := seedUser(t, st, "creator")
	pl, err := svc.Create(ctx, owner.ID, model.PlaylistRequest{Name: "favorites"})
	require.NoError(t, err)

	err = svc.RemoveVideo(ctx, owner.ID, pl.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPlaylist_OwnershipGate(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewPlaylistService(st, composer)

	owner := seedUser(t, st, "creator")
	intruder := seedUser(t, st, "intruder")
	v := seedVideo(t, st, owner.ID, "clip")
	pl, err := svc.Create(ctx, owner.ID, model.PlaylistRequest{Name: "favorites"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, intruder.ID, pl.ID, model.PlaylistRequest{Name: "stolen"})
	assert.ErrorIs(t, err, store.ErrForbidden)
	assert.ErrorIs(t, svc.AddVideo(ctx, intruder.ID, pl.ID, v.ID), store.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, intruder.ID, pl.ID), store.ErrForbidden)

	got, err := st.Playlists.GetByID(ctx, pl.ID)
	require.NoError(t, err)
	assert.Equal(t, "favorites", got.Name)
}

func TestPlaylistCreate_Validation(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewPlaylistService(st, composer)
	owner := seedUser(t, st, "creator")

	_, err := svc.Create(ctx, owner.ID, model.PlaylistRequest{Name: "   "})
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
}

func TestCommentOwnershipGate(t *testing.T) {
	ctx := context.Background()
	_, st, composer := newFixture()
	svc := NewCommentService(st, composer, nil)

	owner := seedUser(t, st, "creator")
	commenter := seedUser(t, st, "commenter")
	intruder := seedUser(t, st, "intruder")
	v := seedVideo(t, st, owner.ID, "clip")

	c, err := svc.Add(ctx, commenter.ID, v.ID, "first!")
	require.NoError(t, err)

	_, err = svc.Update(ctx, intruder.ID, c.ID, "edited")
	assert.ErrorIs(t, err, store.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, intruder.ID, c.ID), store.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, commenter.ID, c.ID))
}
