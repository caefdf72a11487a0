package model

import (
	"time"

	"github.com/google/uuid"
)

// Video represents an uploaded video. VideoFile and Thumbnail are opaque
// object-storage URLs; this service never interprets them.
type Video struct {
	ID          uuid.UUID `json:"id"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	OwnerID     uuid.UUID `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PublishVideoRequest is the API request body for publishing a video.
type PublishVideoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoFile   string  `json:"videoFile"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    float64 `json:"duration"`
}

// UpdateVideoRequest is the API request body for video mutations.
// Nil fields are left unchanged.
type UpdateVideoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
}
