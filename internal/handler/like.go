package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// ToggleVideo handles POST /api/v1/likes/toggle/v/:videoId
func (h *LikeHandler) ToggleVideo(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	res, err := h.svc.ToggleVideo(c.Context(), middleware.RequesterID(c), videoID)
	if err != nil {
		return Error(c, err)
	}
	ObserveToggle("video_like", res.Created)
	return OK(c, fiber.StatusOK, toggleMessage(res.Created, "Video liked", "Like removed"), res)
}

// ToggleComment handles POST /api/v1/likes/toggle/c/:commentId
func (h *LikeHandler) ToggleComment(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	res, err := h.svc.ToggleComment(c.Context(), middleware.RequesterID(c), commentID)
	if err != nil {
		return Error(c, err)
	}
	ObserveToggle("comment_like", res.Created)
	return OK(c, fiber.StatusOK, toggleMessage(res.Created, "Comment liked", "Like removed"), res)
}

// ToggleTweet handles POST /api/v1/likes/toggle/t/:tweetId
func (h *LikeHandler) ToggleTweet(c fiber.Ctx) error {
	tweetID, errMsg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	res, err := h.svc.ToggleTweet(c.Context(), middleware.RequesterID(c), tweetID)
	if err != nil {
		return Error(c, err)
	}
	ObserveToggle("tweet_like", res.Created)
	return OK(c, fiber.StatusOK, toggleMessage(res.Created, "Tweet liked", "Like removed"), res)
}

// LikedVideos handles GET /api/v1/likes/videos
func (h *LikeHandler) LikedVideos(c fiber.Ctx) error {
	pg, err := h.svc.LikedVideos(c.Context(), middleware.RequesterID(c), pageParams(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Liked videos", pg)
}

func toggleMessage(created bool, on, off string) string {
	if created {
		return on
	}
	return off
}
