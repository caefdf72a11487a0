package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
)

type PlaylistHandler struct {
	svc *service.PlaylistService
}

func NewPlaylistHandler(svc *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

// Create handles POST /api/v1/playlists
func (h *PlaylistHandler) Create(c fiber.Ctx) error {
	var req model.PlaylistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	name, errMsg := middleware.ValidateName(req.Name)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	req.Name = name

	p, err := h.svc.Create(c.Context(), middleware.RequesterID(c), req)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusCreated, "Playlist created", p)
}

// ListByUser handles GET /api/v1/playlists/user/:userId
func (h *PlaylistHandler) ListByUser(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	playlists, err := h.svc.ListByUser(c.Context(), userID)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "User playlists", playlists)
}

// Get handles GET /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Get(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	detail, err := h.svc.Get(c.Context(), playlistID, middleware.RequesterID(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Playlist", detail)
}

// Update handles PATCH /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Update(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	var req model.PlaylistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	p, err := h.svc.Update(c.Context(), middleware.RequesterID(c), playlistID, req)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Playlist updated", p)
}

// Delete handles DELETE /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Delete(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	if err := h.svc.Delete(c.Context(), middleware.RequesterID(c), playlistID); err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Playlist deleted", nil)
}

// AddVideo handles PATCH /api/v1/playlists/add/:videoId/:playlistId
func (h *PlaylistHandler) AddVideo(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	playlistID, errMsg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	if err := h.svc.AddVideo(c.Context(), middleware.RequesterID(c), playlistID, videoID); err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Video added to playlist", nil)
}

// RemoveVideo handles PATCH /api/v1/playlists/remove/:videoId/:playlistId
func (h *PlaylistHandler) RemoveVideo(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	playlistID, errMsg := middleware.ValidateID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	if err := h.svc.RemoveVideo(c.Context(), middleware.RequesterID(c), playlistID, videoID); err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Video removed from playlist", nil)
}
