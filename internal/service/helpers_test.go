package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store/storetest"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/view"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

func defaultParams() page.Params {
	return page.Params{Page: 1, Limit: 10, SortBy: "createdAt", SortType: page.SortDesc}
}

// newFixture returns the in-memory store and a composer over it.
func newFixture() (*storetest.Memory, *store.Store, *view.Composer) {
	mem := storetest.NewMemory()
	st := mem.Store()
	return mem, st, view.NewComposer(st)
}

func seedUser(t *testing.T, st *store.Store, username string) model.User {
	t.Helper()
	u := model.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		FullName: "User " + username,
		Avatar:   "https://cdn.example.com/" + username + ".png",
	}
	require.NoError(t, st.Users.Insert(context.Background(), &u))
	return u
}

func seedVideo(t *testing.T, st *store.Store, owner uuid.UUID, title string) model.Video {
	t.Helper()
	now := time.Now()
	v := model.Video{
		ID:          uuid.New(),
		VideoFile:   "https://cdn.example.com/v.mp4",
		Thumbnail:   "https://cdn.example.com/t.jpg",
		Title:       title,
		Duration:    60,
		IsPublished: true,
		OwnerID:     owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, st.Videos.Insert(context.Background(), &v))
	return v
}

func seedComment(t *testing.T, st *store.Store, videoID, owner uuid.UUID, content string) model.Comment {
	t.Helper()
	now := time.Now()
	c := model.Comment{
		ID:        uuid.New(),
		Content:   content,
		VideoID:   videoID,
		OwnerID:   owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Comments.Insert(context.Background(), &c))
	return c
}
