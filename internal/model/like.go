package model

import (
	"time"

	"github.com/google/uuid"
)

// Like records that a user liked exactly one of a video, a comment, or a
// tweet. Exactly one target field is set; the database enforces this with a
// CHECK constraint and at most one like per (liker, target) pair with
// partial unique indexes.
type Like struct {
	ID        uuid.UUID  `json:"id"`
	LikedBy   uuid.UUID  `json:"likedBy"`
	VideoID   *uuid.UUID `json:"videoId,omitempty"`
	CommentID *uuid.UUID `json:"commentId,omitempty"`
	TweetID   *uuid.UUID `json:"tweetId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Subscription records that a user follows a channel (another user).
// At most one row per (subscriber, channel) pair.
type Subscription struct {
	ID           uuid.UUID `json:"id"`
	SubscriberID uuid.UUID `json:"subscriberId"`
	ChannelID    uuid.UUID `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToggleResult reports the relation state after a toggle mutation.
type ToggleResult struct {
	Created bool `json:"created"`
}
