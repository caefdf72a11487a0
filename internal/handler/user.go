package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Current handles GET /api/v1/users/current-user
func (h *UserHandler) Current(c fiber.Ctx) error {
	u, err := h.svc.Current(c.Context(), middleware.RequesterID(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Current user", u)
}

// UpdateProfile handles PATCH /api/v1/users/update-account
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	var req model.UpdateProfileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), middleware.RequesterID(c), req)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Profile updated", u)
}

// ChannelProfile handles GET /api/v1/users/c/:username
func (h *UserHandler) ChannelProfile(c fiber.Ctx) error {
	username, errMsg := middleware.ValidateUsername(c.Params("username"))
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	profile, err := h.svc.ChannelProfile(c.Context(), username, middleware.RequesterID(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Channel profile", profile)
}

// WatchHistory handles GET /api/v1/users/history
func (h *UserHandler) WatchHistory(c fiber.Ctx) error {
	pg, err := h.svc.WatchHistory(c.Context(), middleware.RequesterID(c), pageParams(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Watch history", pg)
}
