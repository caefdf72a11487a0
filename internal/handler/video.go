package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /api/v1/videos?userId=...
func (h *VideoHandler) List(c fiber.Ctx) error {
	ownerID, errMsg := middleware.ValidateID(fiber.Query[string](c, "userId"), "userId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	pg, err := h.svc.List(c.Context(), ownerID, middleware.RequesterID(c), pageParams(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Videos", pg)
}

// Publish handles POST /api/v1/videos
func (h *VideoHandler) Publish(c fiber.Ctx) error {
	var req model.PublishVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	req.Title = title

	v, err := h.svc.Publish(c.Context(), middleware.RequesterID(c), req)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusCreated, "Video published", v)
}

// Watch handles GET /api/v1/videos/:videoId
func (h *VideoHandler) Watch(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	detail, err := h.svc.Watch(c.Context(), videoID, middleware.RequesterID(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Video detail", detail)
}

// Update handles PATCH /api/v1/videos/:videoId
func (h *VideoHandler) Update(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	var req model.UpdateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v, err := h.svc.Update(c.Context(), middleware.RequesterID(c), videoID, req)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Video updated", v)
}

// Delete handles DELETE /api/v1/videos/:videoId
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	if err := h.svc.Delete(c.Context(), middleware.RequesterID(c), videoID); err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Video deleted", nil)
}

// TogglePublish handles PATCH /api/v1/videos/toggle/publish/:videoId
func (h *VideoHandler) TogglePublish(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	v, err := h.svc.TogglePublish(c.Context(), middleware.RequesterID(c), videoID)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Publish state toggled", v)
}
