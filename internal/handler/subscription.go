package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
)

type SubscriptionHandler struct {
	svc *service.SubscriptionService
}

func NewSubscriptionHandler(svc *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Toggle handles POST /api/v1/subscriptions/c/:channelId
func (h *SubscriptionHandler) Toggle(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateID(c.Params("channelId"), "channelId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	res, err := h.svc.Toggle(c.Context(), middleware.RequesterID(c), channelID)
	if err != nil {
		return Error(c, err)
	}
	ObserveToggle("subscription", res.Created)
	return OK(c, fiber.StatusOK, toggleMessage(res.Created, "Subscribed", "Unsubscribed"), res)
}

// Subscribers handles GET /api/v1/subscriptions/c/:channelId
func (h *SubscriptionHandler) Subscribers(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateID(c.Params("channelId"), "channelId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	pg, err := h.svc.Subscribers(c.Context(), channelID, pageParams(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Channel subscribers", pg)
}

// SubscribedTo handles GET /api/v1/subscriptions/u/:subscriberId
func (h *SubscriptionHandler) SubscribedTo(c fiber.Ctx) error {
	subscriberID, errMsg := middleware.ValidateID(c.Params("subscriberId"), "subscriberId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	pg, err := h.svc.SubscribedTo(c.Context(), subscriberID, pageParams(c))
	if err != nil {
		return Error(c, err)
	}
	return OK(c, fiber.StatusOK, "Subscribed channels", pg)
}
