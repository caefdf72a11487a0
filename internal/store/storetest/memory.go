// Package storetest provides an in-memory store implementation for unit
// tests. It enforces the same constraints as the SQL schema — unique
// usernames/emails, one like per (liker, target), one subscription per
// (subscriber, channel), no self-subscription, exactly one like target —
// so services and the view composer can be tested without a database.
package storetest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

type watchEntry struct {
	videoID   uuid.UUID
	watchedAt time.Time
}

// Memory holds every collection behind one mutex; each exported operation
// is atomic, matching the single-document guarantee of the real store.
type Memory struct {
	mu             sync.Mutex
	users          map[uuid.UUID]model.User
	videos         map[uuid.UUID]model.Video
	comments       map[uuid.UUID]model.Comment
	likes          map[uuid.UUID]model.Like
	subs           map[uuid.UUID]model.Subscription
	playlists      map[uuid.UUID]model.Playlist
	playlistVideos map[uuid.UUID][]uuid.UUID
	tweets         map[uuid.UUID]model.Tweet
	watch          map[uuid.UUID][]watchEntry

	// FailLikeInsertWith, when set, is returned by the next like insert and
	// cleared. Used to simulate a racing toggle losing to the unique index.
	FailLikeInsertWith error
}

func NewMemory() *Memory {
	return &Memory{
		users:          make(map[uuid.UUID]model.User),
		videos:         make(map[uuid.UUID]model.Video),
		comments:       make(map[uuid.UUID]model.Comment),
		likes:          make(map[uuid.UUID]model.Like),
		subs:           make(map[uuid.UUID]model.Subscription),
		playlists:      make(map[uuid.UUID]model.Playlist),
		playlistVideos: make(map[uuid.UUID][]uuid.UUID),
		tweets:         make(map[uuid.UUID]model.Tweet),
		watch:          make(map[uuid.UUID][]watchEntry),
	}
}

// Store exposes the memory store through the adapter interfaces.
func (m *Memory) Store() *store.Store {
	return &store.Store{
		Users:         &memUsers{m},
		Videos:        &memVideos{m},
		Comments:      &memComments{m},
		Likes:         &memLikes{m},
		Subscriptions: &memSubs{m},
		Playlists:     &memPlaylists{m},
		Tweets:        &memTweets{m},
	}
}

// LikeCount reports the raw number of like rows, for invariant assertions.
func (m *Memory) LikeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.likes)
}

// SubscriptionCount reports the raw number of subscription rows.
func (m *Memory) SubscriptionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

// CommentExists reports whether a comment row is still present.
func (m *Memory) CommentExists(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.comments[id]
	return ok
}

// --- users ---

type memUsers struct{ m *Memory }

func (s *memUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	u, ok := s.m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *memUsers) GetByUsernameOrEmail(_ context.Context, username, email string) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, u := range s.m.users {
		if (username != "" && strings.EqualFold(u.Username, username)) ||
			(email != "" && strings.EqualFold(u.Email, email)) {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUsers) ListByIDs(_ context.Context, ids []uuid.UUID) ([]model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *memUsers) Insert(_ context.Context, u *model.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return store.ErrConflict
		}
	}
	s.m.users[u.ID] = *u
	return nil
}

func (s *memUsers) UpdateFields(_ context.Context, id uuid.UUID, upd store.UserUpdate) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	u, ok := s.m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.CoverImage != nil {
		u.CoverImage = *upd.CoverImage
	}
	u.UpdatedAt = time.Now()
	s.m.users[id] = u
	return &u, nil
}

func (s *memUsers) UpdateRefreshToken(_ context.Context, id uuid.UUID, token string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	u, ok := s.m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.RefreshToken = token
	s.m.users[id] = u
	return nil
}

func (s *memUsers) AddWatchHistory(_ context.Context, userID, videoID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	entries := s.m.watch[userID]
	for i, e := range entries {
		if e.videoID == videoID {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	s.m.watch[userID] = append([]watchEntry{{videoID: videoID, watchedAt: time.Now()}}, entries...)
	return nil
}

func (s *memUsers) WatchHistoryIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	entries := s.m.watch[userID]
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.videoID)
	}
	return ids, nil
}

// --- videos ---

type memVideos struct{ m *Memory }

func (s *memVideos) GetByID(_ context.Context, id uuid.UUID) (*model.Video, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	v, ok := s.m.videos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (s *memVideos) ListByOwner(_ context.Context, ownerID uuid.UUID, query string) ([]model.Video, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []model.Video
	for _, v := range s.m.videos {
		if v.OwnerID != ownerID || !v.IsPublished {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(v.Title), strings.ToLower(query)) &&
			!strings.Contains(strings.ToLower(v.Description), strings.ToLower(query)) {
			continue
		}
		out = append(out, v)
	}
	sortStable(out, func(v model.Video) uuid.UUID { return v.ID })
	return out, nil
}

func (s *memVideos) ListByIDs(_ context.Context, ids []uuid.UUID) ([]model.Video, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.m.videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *memVideos) Insert(_ context.Context, v *model.Video) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.videos[v.ID] = *v
	return nil
}

func (s *memVideos) UpdateFields(_ context.Context, id uuid.UUID, upd store.VideoUpdate) (*model.Video, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	v, ok := s.m.videos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Title != nil {
		v.Title = *upd.Title
	}
	if upd.Description != nil {
		v.Description = *upd.Description
	}
	if upd.Thumbnail != nil {
		v.Thumbnail = *upd.Thumbnail
	}
	v.UpdatedAt = time.Now()
	s.m.videos[id] = v
	return &v, nil
}

func (s *memVideos) IncrementViews(_ context.Context, id uuid.UUID) (*model.Video, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	v, ok := s.m.videos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	v.Views++
	s.m.videos[id] = v
	return &v, nil
}

func (s *memVideos) SetPublished(_ context.Context, id uuid.UUID, published bool) (*model.Video, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	v, ok := s.m.videos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	v.IsPublished = published
	v.UpdatedAt = time.Now()
	s.m.videos[id] = v
	return &v, nil
}

func (s *memVideos) Delete(_ context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.videos[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.m.videos, id)
	return nil
}

// --- comments ---

type memComments struct{ m *Memory }

func (s *memComments) GetByID(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (s *memComments) ListByVideo(_ context.Context, videoID uuid.UUID) ([]model.Comment, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []model.Comment
	for _, c := range s.m.comments {
		if c.VideoID == videoID {
			out = append(out, c)
		}
	}
	sortStable(out, func(c model.Comment) uuid.UUID { return c.ID })
	return out, nil
}

func (s *memComments) Insert(_ context.Context, c *model.Comment) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.videos[c.VideoID]; !ok {
		return store.ErrInvalidReference
	}
	s.m.comments[c.ID] = *c
	return nil
}

func (s *memComments) UpdateContent(_ context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c.Content = content
	c.UpdatedAt = time.Now()
	s.m.comments[id] = c
	return &c, nil
}

func (s *memComments) Delete(_ context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.m.comments, id)
	return nil
}

// --- likes ---

type memLikes struct{ m *Memory }

func (s *memLikes) findBy(match func(model.Like) bool) (*model.Like, error) {
	for _, l := range s.m.likes {
		if match(l) {
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memLikes) FindVideoLike(_ context.Context, likedBy, videoID uuid.UUID) (*model.Like, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.findBy(func(l model.Like) bool {
		return l.LikedBy == likedBy && l.VideoID != nil && *l.VideoID == videoID
	})
}

func (s *memLikes) FindCommentLike(_ context.Context, likedBy, commentID uuid.UUID) (*model.Like, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.findBy(func(l model.Like) bool {
		return l.LikedBy == likedBy && l.CommentID != nil && *l.CommentID == commentID
	})
}

func (s *memLikes) FindTweetLike(_ context.Context, likedBy, tweetID uuid.UUID) (*model.Like, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.findBy(func(l model.Like) bool {
		return l.LikedBy == likedBy && l.TweetID != nil && *l.TweetID == tweetID
	})
}

func (s *memLikes) list(match func(model.Like) bool) []model.Like {
	var out []model.Like
	for _, l := range s.m.likes {
		if match(l) {
			out = append(out, l)
		}
	}
	sortStable(out, func(l model.Like) uuid.UUID { return l.ID })
	return out
}

func (s *memLikes) ListByVideoIDs(_ context.Context, videoIDs []uuid.UUID) ([]model.Like, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	set := idSet(videoIDs)
	return s.list(func(l model.Like) bool {
		return l.VideoID != nil && set[*l.VideoID]
	}), nil
}

func (s *memLikes) ListByCommentIDs(_ context.Context, commentIDs []uuid.UUID) ([]model.Like, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	set := idSet(commentIDs)
	return s.list(func(l model.Like) bool {
		return l.CommentID != nil && set[*l.CommentID]
	}), nil
}

func (s *memLikes) ListByTweetIDs(_ context.Context, tweetIDs []uuid.UUID) ([]model.Like, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	set := idSet(tweetIDs)
	return s.list(func(l model.Like) bool {
		return l.TweetID != nil && set[*l.TweetID]
	}), nil
}

func (s *memLikes) ListVideoLikesByUser(_ context.Context, likedBy uuid.UUID) ([]model.Like, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := s.list(func(l model.Like) bool {
		return l.LikedBy == likedBy && l.VideoID != nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memLikes) Insert(_ context.Context, l *model.Like) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.FailLikeInsertWith; err != nil {
		s.m.FailLikeInsertWith = nil
		return err
	}
	targets := 0
	for _, t := range []*uuid.UUID{l.VideoID, l.CommentID, l.TweetID} {
		if t != nil {
			targets++
		}
	}
	if targets != 1 {
		return store.ErrInvalidArgument
	}
	for _, existing := range s.m.likes {
		if existing.LikedBy != l.LikedBy {
			continue
		}
		if sameTarget(existing.VideoID, l.VideoID) ||
			sameTarget(existing.CommentID, l.CommentID) ||
			sameTarget(existing.TweetID, l.TweetID) {
			return store.ErrConflict
		}
	}
	s.m.likes[l.ID] = *l
	return nil
}

func (s *memLikes) Delete(_ context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.likes[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.m.likes, id)
	return nil
}

// --- subscriptions ---

type memSubs struct{ m *Memory }

func (s *memSubs) Find(_ context.Context, subscriberID, channelID uuid.UUID) (*model.Subscription, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, sub := range s.m.subs {
		if sub.SubscriberID == subscriberID && sub.ChannelID == channelID {
			return &sub, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memSubs) ListByChannel(_ context.Context, channelID uuid.UUID) ([]model.Subscription, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []model.Subscription
	for _, sub := range s.m.subs {
		if sub.ChannelID == channelID {
			out = append(out, sub)
		}
	}
	sortStable(out, func(s model.Subscription) uuid.UUID { return s.ID })
	return out, nil
}

func (s *memSubs) ListBySubscriber(_ context.Context, subscriberID uuid.UUID) ([]model.Subscription, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []model.Subscription
	for _, sub := range s.m.subs {
		if sub.SubscriberID == subscriberID {
			out = append(out, sub)
		}
	}
	sortStable(out, func(s model.Subscription) uuid.UUID { return s.ID })
	return out, nil
}

func (s *memSubs) CountByChannel(ctx context.Context, channelID uuid.UUID) (int, error) {
	subs, _ := s.ListByChannel(ctx, channelID)
	return len(subs), nil
}

func (s *memSubs) CountBySubscriber(ctx context.Context, subscriberID uuid.UUID) (int, error) {
	subs, _ := s.ListBySubscriber(ctx, subscriberID)
	return len(subs), nil
}

func (s *memSubs) Insert(_ context.Context, sub *model.Subscription) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if sub.SubscriberID == sub.ChannelID {
		return store.ErrInvalidArgument
	}
	for _, existing := range s.m.subs {
		if existing.SubscriberID == sub.SubscriberID && existing.ChannelID == sub.ChannelID {
			return store.ErrConflict
		}
	}
	s.m.subs[sub.ID] = *sub
	return nil
}

func (s *memSubs) Delete(_ context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.subs[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.m.subs, id)
	return nil
}

// --- playlists ---

type memPlaylists struct{ m *Memory }

func (s *memPlaylists) GetByID(_ context.Context, id uuid.UUID) (*model.Playlist, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	p, ok := s.m.playlists[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *memPlaylists) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Playlist, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []model.Playlist
	for _, p := range s.m.playlists {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sortStable(out, func(p model.Playlist) uuid.UUID { return p.ID })
	return out, nil
}

func (s *memPlaylists) Insert(_ context.Context, p *model.Playlist) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.playlists[p.ID] = *p
	return nil
}

func (s *memPlaylists) UpdateFields(_ context.Context, id uuid.UUID, upd store.PlaylistUpdate) (*model.Playlist, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	p, ok := s.m.playlists[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	p.UpdatedAt = time.Now()
	s.m.playlists[id] = p
	return &p, nil
}

func (s *memPlaylists) Delete(_ context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.playlists[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.m.playlists, id)
	delete(s.m.playlistVideos, id)
	return nil
}

func (s *memPlaylists) AddVideo(_ context.Context, playlistID, videoID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.playlists[playlistID]; !ok {
		return store.ErrInvalidReference
	}
	for _, id := range s.m.playlistVideos[playlistID] {
		if id == videoID {
			return store.ErrConflict
		}
	}
	s.m.playlistVideos[playlistID] = append(s.m.playlistVideos[playlistID], videoID)
	return nil
}

func (s *memPlaylists) RemoveVideo(_ context.Context, playlistID, videoID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	ids := s.m.playlistVideos[playlistID]
	for i, id := range ids {
		if id == videoID {
			s.m.playlistVideos[playlistID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memPlaylists) VideoIDs(_ context.Context, playlistID uuid.UUID) ([]uuid.UUID, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	ids := s.m.playlistVideos[playlistID]
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out, nil
}

// --- tweets ---

type memTweets struct{ m *Memory }

func (s *memTweets) GetByID(_ context.Context, id uuid.UUID) (*model.Tweet, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	t, ok := s.m.tweets[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (s *memTweets) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Tweet, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []model.Tweet
	for _, t := range s.m.tweets {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sortStable(out, func(t model.Tweet) uuid.UUID { return t.ID })
	return out, nil
}

func (s *memTweets) Insert(_ context.Context, t *model.Tweet) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.tweets[t.ID] = *t
	return nil
}

func (s *memTweets) UpdateContent(_ context.Context, id uuid.UUID, content string) (*model.Tweet, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	t, ok := s.m.tweets[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	t.Content = content
	t.UpdatedAt = time.Now()
	s.m.tweets[id] = t
	return &t, nil
}

func (s *memTweets) Delete(_ context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.tweets[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.m.tweets, id)
	return nil
}

// --- helpers ---

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func sameTarget(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

// sortStable gives map iterations a deterministic order for tests.
func sortStable[T any](rows []T, id func(T) uuid.UUID) {
	sort.SliceStable(rows, func(i, j int) bool {
		return id(rows[i]).String() < id(rows[j]).String()
	})
}
