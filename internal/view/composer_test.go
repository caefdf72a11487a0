package view

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store/storetest"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

func defaultParams() page.Params {
	return page.Params{Page: 1, Limit: 10, SortBy: "createdAt", SortType: page.SortDesc}
}

func addUser(t *testing.T, st *store.Store, username string) model.User {
	t.Helper()
	u := model.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		FullName: "User " + username,
		Avatar:   "https://cdn.example.com/" + username + ".png",
	}
	if err := st.Users.Insert(context.Background(), &u); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return u
}

func addVideo(t *testing.T, st *store.Store, owner uuid.UUID, title string, createdAt time.Time) model.Video {
	t.Helper()
	v := model.Video{
		ID:          uuid.New(),
		VideoFile:   "https://cdn.example.com/v.mp4",
		Thumbnail:   "https://cdn.example.com/t.jpg",
		Title:       title,
		Duration:    120,
		IsPublished: true,
		OwnerID:     owner,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if err := st.Videos.Insert(context.Background(), &v); err != nil {
		t.Fatalf("insert video: %v", err)
	}
	return v
}

func likeVideo(t *testing.T, st *store.Store, likedBy, videoID uuid.UUID) {
	t.Helper()
	err := st.Likes.Insert(context.Background(), &model.Like{
		ID:        uuid.New(),
		LikedBy:   likedBy,
		VideoID:   &videoID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("insert like: %v", err)
	}
}

func TestVideoList_JoinsAndDerivedFields(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)

	owner := addUser(t, st, "creator")
	viewer := addUser(t, st, "watcher")
	other1 := addUser(t, st, "fan1")
	other2 := addUser(t, st, "fan2")

	v := addVideo(t, st, owner.ID, "first upload", time.Now())
	likeVideo(t, st, viewer.ID, v.ID)
	likeVideo(t, st, other1.ID, v.ID)
	likeVideo(t, st, other2.ID, v.ID)

	pg, err := composer.VideoList(ctx, owner.ID, viewer.ID, defaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pg.Docs) != 1 {
		t.Fatalf("docs = %d, want 1", len(pg.Docs))
	}

	got := pg.Docs[0]
	if got.LikeCount != 3 {
		t.Errorf("likeCount = %d, want 3", got.LikeCount)
	}
	if !got.IsLiked {
		t.Error("isLiked should be true for a viewer who liked the video")
	}
	if got.Owner == nil || got.Owner.Username != "creator" {
		t.Errorf("owner = %+v, want username creator", got.Owner)
	}
}

func TestVideoList_AnonymousViewerNeverLikes(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)

	owner := addUser(t, st, "creator")
	fan := addUser(t, st, "fan")
	v := addVideo(t, st, owner.ID, "clip", time.Now())
	likeVideo(t, st, fan.ID, v.ID)

	pg, err := composer.VideoList(ctx, owner.ID, uuid.Nil, defaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pg.Docs[0].IsLiked {
		t.Error("anonymous viewer must not report isLiked")
	}
	if pg.Docs[0].LikeCount != 1 {
		t.Errorf("likeCount = %d, want 1", pg.Docs[0].LikeCount)
	}
}

func TestVideoList_Empty(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)
	owner := addUser(t, st, "creator")

	pg, err := composer.VideoList(ctx, owner.ID, uuid.Nil, defaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pg.Docs) != 0 || pg.TotalDocs != 0 || pg.TotalPages != 0 {
		t.Errorf("empty list metadata = %+v, want zeroes", pg)
	}
	if pg.HasNextPage || pg.HasPrevPage {
		t.Error("empty list should have no neighbors")
	}
}

func TestVideoList_InvalidPagination(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)
	owner := addUser(t, st, "creator")

	p := defaultParams()
	p.Page = 0
	_, err := composer.VideoList(ctx, owner.ID, uuid.Nil, p)
	if err == nil {
		t.Fatal("expected error for page 0")
	}
}

// Watch-page composition follows the deepest join chain: video → comments →
// comment owners, plus like rows on both levels.
func TestVideoDetail_CommentChain(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)

	owner := addUser(t, st, "creator")
	commenter := addUser(t, st, "commenter")
	viewer := addUser(t, st, "watcher")
	v := addVideo(t, st, owner.ID, "clip", time.Now())

	cm := model.Comment{
		ID:        uuid.New(),
		Content:   "nice video",
		VideoID:   v.ID,
		OwnerID:   commenter.ID,
		CreatedAt: time.Now(),
	}
	if err := st.Comments.Insert(ctx, &cm); err != nil {
		t.Fatalf("insert comment: %v", err)
	}
	commentID := cm.ID
	err := st.Likes.Insert(ctx, &model.Like{
		ID:        uuid.New(),
		LikedBy:   viewer.ID,
		CommentID: &commentID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("insert comment like: %v", err)
	}

	detail, err := composer.VideoDetail(ctx, v.ID, viewer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(detail.Comments))
	}

	got := detail.Comments[0]
	if got.Owner == nil || got.Owner.Username != "commenter" {
		t.Errorf("comment owner = %+v, want username commenter", got.Owner)
	}
	if got.LikeCount != 1 || !got.IsLiked {
		t.Errorf("comment likeCount/isLiked = %d/%v, want 1/true", got.LikeCount, got.IsLiked)
	}
}

func TestVideoDetail_MissingVideo(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)

	_, err := composer.VideoDetail(ctx, uuid.New(), uuid.Nil)
	if err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestChannelProfile_CountsAndMembership(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)

	channel := addUser(t, st, "channel")
	sub1 := addUser(t, st, "sub1")
	sub2 := addUser(t, st, "sub2")
	elsewhere := addUser(t, st, "elsewhere")

	for _, s := range []uuid.UUID{sub1.ID, sub2.ID} {
		err := st.Subscriptions.Insert(ctx, &model.Subscription{
			ID: uuid.New(), SubscriberID: s, ChannelID: channel.ID, CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("insert subscription: %v", err)
		}
	}
	// The channel itself subscribes to someone else.
	err := st.Subscriptions.Insert(ctx, &model.Subscription{
		ID: uuid.New(), SubscriberID: channel.ID, ChannelID: elsewhere.ID, CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("insert subscription: %v", err)
	}

	profile, err := composer.ChannelProfile(ctx, channel.ID, sub1.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.SubscriberCount != 2 {
		t.Errorf("subscriberCount = %d, want 2", profile.SubscriberCount)
	}
	if profile.SubscribedToCount != 1 {
		t.Errorf("subscribedToCount = %d, want 1", profile.SubscribedToCount)
	}
	if !profile.IsSubscribed {
		t.Error("isSubscribed should be true for a subscriber viewer")
	}

	profile, err = composer.ChannelProfile(ctx, channel.ID, elsewhere.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.IsSubscribed {
		t.Error("isSubscribed should be false for a non-subscriber viewer")
	}
}

func TestWatchHistory_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)

	owner := addUser(t, st, "creator")
	watcher := addUser(t, st, "watcher")
	a := addVideo(t, st, owner.ID, "first", time.Now().Add(-2*time.Hour))
	b := addVideo(t, st, owner.ID, "second", time.Now().Add(-time.Hour))

	for _, id := range []uuid.UUID{a.ID, b.ID, a.ID} { // re-watch a
		if err := st.Users.AddWatchHistory(ctx, watcher.ID, id); err != nil {
			t.Fatalf("add watch history: %v", err)
		}
	}

	pg, err := composer.WatchHistory(ctx, watcher.ID, defaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pg.Docs) != 2 {
		t.Fatalf("docs = %d, want 2 (re-watch must not duplicate)", len(pg.Docs))
	}
	if pg.Docs[0].ID != a.ID {
		t.Errorf("first history entry = %s, want the re-watched video %s", pg.Docs[0].ID, a.ID)
	}
}

func TestLikedVideos(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)

	owner := addUser(t, st, "creator")
	liker := addUser(t, st, "liker")
	v1 := addVideo(t, st, owner.ID, "one", time.Now())
	v2 := addVideo(t, st, owner.ID, "two", time.Now())
	addVideo(t, st, owner.ID, "three", time.Now())

	likeVideo(t, st, liker.ID, v1.ID)
	likeVideo(t, st, liker.ID, v2.ID)

	pg, err := composer.LikedVideos(ctx, liker.ID, defaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pg.Docs) != 2 {
		t.Fatalf("docs = %d, want 2", len(pg.Docs))
	}
	for _, card := range pg.Docs {
		if !card.IsLiked {
			t.Errorf("video %s should report isLiked for its liker", card.ID)
		}
	}
}

func TestPlaylistDetail(t *testing.T) {
	ctx := context.Background()
	st := storetest.NewMemory().Store()
	composer := NewComposer(st)

	owner := addUser(t, st, "creator")
	v1 := addVideo(t, st, owner.ID, "one", time.Now())
	v2 := addVideo(t, st, owner.ID, "two", time.Now())

	pl := model.Playlist{ID: uuid.New(), Name: "favorites", OwnerID: owner.ID, CreatedAt: time.Now()}
	if err := st.Playlists.Insert(ctx, &pl); err != nil {
		t.Fatalf("insert playlist: %v", err)
	}
	for _, id := range []uuid.UUID{v1.ID, v2.ID} {
		if err := st.Playlists.AddVideo(ctx, pl.ID, id); err != nil {
			t.Fatalf("add video: %v", err)
		}
	}

	detail, err := composer.PlaylistDetail(ctx, pl.ID, uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.VideoCount != 2 || len(detail.Videos) != 2 {
		t.Errorf("videoCount = %d (%d cards), want 2", detail.VideoCount, len(detail.Videos))
	}
	if detail.Name != "favorites" {
		t.Errorf("name = %q, want favorites", detail.Name)
	}
}
