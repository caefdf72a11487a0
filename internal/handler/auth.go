package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /api/v1/users/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	username, errMsg := middleware.ValidateUsername(req.Username)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	req.Username = username

	u, err := h.svc.Register(c.Context(), req)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusCreated, "User registered", u)
}

// Login handles POST /api/v1/users/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.svc.Login(c.Context(), req)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Logged in", resp)
}

// Refresh handles POST /api/v1/users/refresh-token
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind().JSON(&req); err != nil || req.RefreshToken == "" {
		return Fail(c, fiber.StatusBadRequest, "refreshToken is required")
	}

	resp, err := h.svc.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Token refreshed", resp)
}

// Logout handles POST /api/v1/users/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.svc.Logout(c.Context(), middleware.RequesterID(c)); err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Logged out", nil)
}
