package model

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is a named, owner-scoped set of videos (no duplicates).
type Playlist struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistRequest is the API request body for creating or updating a playlist.
type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tweet is a short text post by a user.
type Tweet struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TweetRequest is the API request body for creating or updating a tweet.
type TweetRequest struct {
	Content string `json:"content"`
}
