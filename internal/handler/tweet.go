package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
)

type TweetHandler struct {
	svc *service.TweetService
}

func NewTweetHandler(svc *service.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

// Create handles POST /api/v1/tweets
func (h *TweetHandler) Create(c fiber.Ctx) error {
	var req model.TweetRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	content, errMsg := middleware.ValidateContent(req.Content)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	t, err := h.svc.Create(c.Context(), middleware.RequesterID(c), content)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusCreated, "Tweet created", t)
}

// ListByUser handles GET /api/v1/tweets/user/:userId
func (h *TweetHandler) ListByUser(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	pg, err := h.svc.ListByUser(c.Context(), userID, middleware.RequesterID(c), pageParams(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "User tweets", pg)
}

// Update handles PATCH /api/v1/tweets/:tweetId
func (h *TweetHandler) Update(c fiber.Ctx) error {
	tweetID, errMsg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}
	var req model.TweetRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	content, errMsg := middleware.ValidateContent(req.Content)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	t, err := h.svc.Update(c.Context(), middleware.RequesterID(c), tweetID, content)
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Tweet updated", t)
}

// Delete handles DELETE /api/v1/tweets/:tweetId
func (h *TweetHandler) Delete(c fiber.Ctx) error {
	tweetID, errMsg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	if err := h.svc.Delete(c.Context(), middleware.RequesterID(c), tweetID); err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Tweet deleted", nil)
}
