// Package view assembles denormalized, read-only representations of the
// platform's entities. Every variant is a typed struct built the same way:
// filter the root collection, batch-join the referenced collections, compute
// derived fields (counts, membership flags, collapsed to-one joins), then
// sort and paginate. The composer never writes to the store.
package view

import (
	"time"

	"github.com/google/uuid"
)

// Owner is the projection of a user embedded in other views.
type Owner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Avatar   string    `json:"avatar"`
}

// VideoCard is the list representation of a video: the video row joined
// with its owner and its like rows.
type VideoCard struct {
	ID          uuid.UUID `json:"id"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       *Owner    `json:"owner"`
	LikeCount   int       `json:"likeCount"`
	IsLiked     bool      `json:"isLiked"`
}

// CommentItem is a comment joined with its owner and like rows.
type CommentItem struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     *Owner    `json:"owner"`
	LikeCount int       `json:"likeCount"`
	IsLiked   bool      `json:"isLiked"`
}

// VideoDetail is the watch-page view: the video card plus its comment
// thread (video → comments → comment owners, the deepest join in the API).
type VideoDetail struct {
	VideoCard
	Comments []CommentItem `json:"comments"`
}

// ChannelProfile is a user viewed as a channel.
type ChannelProfile struct {
	Owner
	CoverImage        string `json:"coverImage,omitempty"`
	SubscriberCount   int    `json:"subscriberCount"`
	SubscribedToCount int    `json:"subscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}

// SubscriberItem is one row of a channel's subscriber list.
type SubscriberItem struct {
	SubscriptionID uuid.UUID `json:"subscriptionId"`
	SubscribedAt   time.Time `json:"subscribedAt"`
	Subscriber     *Owner    `json:"subscriber"`
}

// SubscribedChannelItem is one row of a user's subscribed-channel list.
type SubscribedChannelItem struct {
	SubscriptionID uuid.UUID `json:"subscriptionId"`
	SubscribedAt   time.Time `json:"subscribedAt"`
	Channel        *Owner    `json:"channel"`
}

// PlaylistDetail is a playlist joined with its member videos.
type PlaylistDetail struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
	VideoCount  int         `json:"videoCount"`
	Videos      []VideoCard `json:"videos"`
}

// TweetItem is a tweet joined with its owner and like rows.
type TweetItem struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     *Owner    `json:"owner"`
	LikeCount int       `json:"likeCount"`
	IsLiked   bool      `json:"isLiked"`
}
