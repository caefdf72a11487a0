package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. A user doubles as a channel:
// other users subscribe to it and its published videos form the channel feed.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"coverImage,omitempty"`
	PasswordHash string    `json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterRequest is the API request body for account creation.
// Avatar and cover image arrive as object-storage URLs; the upload itself
// happens outside this service.
type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Password   string `json:"password"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"coverImage,omitempty"`
}

// LoginRequest is the API request body for login. Either username or email
// may be supplied.
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// AuthResponse carries the token pair issued on login and refresh.
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UpdateProfileRequest is the API request body for profile mutations.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	FullName   *string `json:"fullName,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
}
