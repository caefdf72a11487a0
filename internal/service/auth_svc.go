package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/auth"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/hash"
)

// ErrInvalidCredentials covers failed logins and bad or reused refresh
// tokens. Deliberately indistinguishable from the outside.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration and the access/refresh token lifecycle.
// The stored refresh token is rotated on every refresh, so a stolen old
// token stops working as soon as the legitimate client refreshes.
type AuthService struct {
	users   store.Users
	access  *auth.JWTManager
	refresh *auth.JWTManager
}

func NewAuthService(users store.Users, access, refresh *auth.JWTManager) *AuthService {
	return &AuthService{users: users, access: access, refresh: refresh}
}

// Register creates an account. Username and email are unique
// case-insensitively; a taken credential returns ErrConflict.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Username == "" || req.Email == "" || req.FullName == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username, email, fullName and password are required", store.ErrInvalidArgument)
	}
	if req.Avatar == "" {
		return nil, fmt.Errorf("%w: avatar is required", store.ErrInvalidArgument)
	}

	_, err := s.users.GetByUsernameOrEmail(ctx, req.Username, req.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: username or email already registered", store.ErrConflict)
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, err
	}

	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	u := &model.User{
		ID:           uuid.New(),
		Username:     strings.ToLower(req.Username),
		Email:        strings.ToLower(req.Email),
		FullName:     req.FullName,
		Avatar:       req.Avatar,
		CoverImage:   req.CoverImage,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// The unique indexes still catch a racing registration.
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the password and issues a fresh token pair.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if (req.Username == "" && req.Email == "") || req.Password == "" {
		return nil, fmt.Errorf("%w: username or email, and password are required", store.ErrInvalidArgument)
	}

	u, err := s.users.GetByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.Verify(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// Refresh exchanges a valid refresh token for a new pair. The token must
// match the one stored for the user; anything else is treated as reuse.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.AuthResponse, error) {
	userID, err := s.refresh.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.RefreshToken == "" || u.RefreshToken != refreshToken {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// Logout clears the stored refresh token, ending the session.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.users.UpdateRefreshToken(ctx, userID, "")
}

func (s *AuthService) issueTokens(ctx context.Context, u *model.User) (*model.AuthResponse, error) {
	accessToken, err := s.access.Generate(u.ID)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refreshToken, err := s.refresh.Generate(u.ID)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	if err := s.users.UpdateRefreshToken(ctx, u.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}
	u.RefreshToken = refreshToken
	return &model.AuthResponse{
		User:         u,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
