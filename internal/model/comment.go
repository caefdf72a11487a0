package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is attached to exactly one video.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	VideoID   uuid.UUID `json:"videoId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentRequest is the API request body for adding or updating a comment.
type CommentRequest struct {
	Content string `json:"content"`
}
