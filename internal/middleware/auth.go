package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/auth"
)

// requesterKey is the Locals key carrying the verified requester id.
const requesterKey = "requesterID"

// NewRequireAuth verifies the Bearer access token and stores the requester
// id for handlers. Requests without a valid token are rejected with 401.
func NewRequireAuth(verifier *auth.JWTManager) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, err := auth.ExtractBearer(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return Unauthorized(c, "Missing or malformed Authorization header")
		}
		id, err := verifier.Verify(token)
		if err != nil {
			return Unauthorized(c, "Invalid or expired access token")
		}
		c.Locals(requesterKey, id)
		return c.Next()
	}
}

// NewOptionalAuth resolves the requester id when a valid token is present
// but never rejects. Anonymous requests proceed with uuid.Nil, which view
// composition treats as "likes nothing, subscribes to nothing".
func NewOptionalAuth(verifier *auth.JWTManager) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token, err := auth.ExtractBearer(c.Get(fiber.HeaderAuthorization)); err == nil {
			if id, err := verifier.Verify(token); err == nil {
				c.Locals(requesterKey, id)
			}
		}
		return c.Next()
	}
}

// RequesterID returns the verified requester id, or uuid.Nil for anonymous
// requests.
func RequesterID(c fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(requesterKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// Unauthorized writes a 401 in the standard response envelope.
func Unauthorized(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"statusCode": fiber.StatusUnauthorized,
		"message":    message,
		"success":    false,
	})
}
