// Package store defines the entity store adapter: typed access to the
// platform's collections. All implementations guarantee single-row atomicity
// only; callers never assume multi-row transactions. Reads used for view
// composition are point-in-time snapshots per call.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
)

// UserUpdate names the mutable profile fields. Nil fields are left unchanged.
type UserUpdate struct {
	FullName   *string
	Avatar     *string
	CoverImage *string
}

// VideoUpdate names the mutable video fields. Nil fields are left unchanged.
type VideoUpdate struct {
	Title       *string
	Description *string
	Thumbnail   *string
}

// PlaylistUpdate names the mutable playlist fields. Nil fields are left unchanged.
type PlaylistUpdate struct {
	Name        *string
	Description *string
}

type Users interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByUsernameOrEmail matches either credential, case-insensitively.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error)
	// Insert returns ErrConflict when the username or email is taken.
	Insert(ctx context.Context, u *model.User) error
	UpdateFields(ctx context.Context, id uuid.UUID, upd UserUpdate) (*model.User, error)
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	// AddWatchHistory appends with set semantics: re-watching an already
	// recorded video refreshes its position instead of duplicating it.
	AddWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error
	// WatchHistoryIDs returns video ids most recently watched first.
	WatchHistoryIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type Videos interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	// ListByOwner returns the owner's published videos; query, when
	// non-empty, filters on title/description substring match.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]model.Video, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Video, error)
	Insert(ctx context.Context, v *model.Video) error
	UpdateFields(ctx context.Context, id uuid.UUID, upd VideoUpdate) (*model.Video, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (*model.Video, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Comments interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListByVideo(ctx context.Context, videoID uuid.UUID) ([]model.Comment, error)
	Insert(ctx context.Context, c *model.Comment) error
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Likes interface {
	FindVideoLike(ctx context.Context, likedBy, videoID uuid.UUID) (*model.Like, error)
	FindCommentLike(ctx context.Context, likedBy, commentID uuid.UUID) (*model.Like, error)
	FindTweetLike(ctx context.Context, likedBy, tweetID uuid.UUID) (*model.Like, error)
	ListByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]model.Like, error)
	ListByCommentIDs(ctx context.Context, commentIDs []uuid.UUID) ([]model.Like, error)
	ListByTweetIDs(ctx context.Context, tweetIDs []uuid.UUID) ([]model.Like, error)
	ListVideoLikesByUser(ctx context.Context, likedBy uuid.UUID) ([]model.Like, error)
	// Insert returns ErrConflict when a like by the same user on the same
	// target already exists.
	Insert(ctx context.Context, l *model.Like) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Subscriptions interface {
	Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*model.Subscription, error)
	ListByChannel(ctx context.Context, channelID uuid.UUID) ([]model.Subscription, error)
	ListBySubscriber(ctx context.Context, subscriberID uuid.UUID) ([]model.Subscription, error)
	CountByChannel(ctx context.Context, channelID uuid.UUID) (int, error)
	CountBySubscriber(ctx context.Context, subscriberID uuid.UUID) (int, error)
	// Insert returns ErrConflict when the pair is already subscribed.
	Insert(ctx context.Context, s *model.Subscription) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Playlists interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Playlist, error)
	Insert(ctx context.Context, p *model.Playlist) error
	UpdateFields(ctx context.Context, id uuid.UUID, upd PlaylistUpdate) (*model.Playlist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AddVideo returns ErrConflict when the video is already a member.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
	VideoIDs(ctx context.Context, playlistID uuid.UUID) ([]uuid.UUID, error)
}

type Tweets interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Tweet, error)
	Insert(ctx context.Context, t *model.Tweet) error
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store bundles the per-collection adapters.
type Store struct {
	Users         Users
	Videos        Videos
	Comments      Comments
	Likes         Likes
	Subscriptions Subscriptions
	Playlists     Playlists
	Tweets        Tweets
}
