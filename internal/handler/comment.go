package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List handles GET /api/v1/comments/:videoId
func (h *CommentHandler) List(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	pg, err := h.svc.List(c.Context(), videoID, middleware.RequesterID(c), pageParams(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Comments", pg)
}

// Add handles POST /api/v1/comments/:videoId
func (h *CommentHandler) Add(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	var req model.CommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	content, errMsg := middleware.ValidateContent(req.Content)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	cm, err := h.svc.Add(c.Context(), middleware.RequesterID(c), videoID, content)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusCreated, "Comment added", cm)
}

// Update handles PATCH /api/v1/comments/c/:commentId
func (h *CommentHandler) Update(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	var req model.CommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	content, errMsg := middleware.ValidateContent(req.Content)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	cm, err := h.svc.Update(c.Context(), middleware.RequesterID(c), commentID, content)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Comment updated", cm)
}

// Delete handles DELETE /api/v1/comments/c/:commentId
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	if err := h.svc.Delete(c.Context(), middleware.RequesterID(c), commentID); err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Comment deleted", nil)
}
