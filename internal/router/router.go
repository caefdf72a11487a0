package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/handler"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/auth"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Video        *handler.VideoHandler
	Comment      *handler.CommentHandler
	Like         *handler.LikeHandler
	Subscription *handler.SubscriptionHandler
	Playlist     *handler.PlaylistHandler
	Tweet        *handler.TweetHandler
	Health       *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given
// Fiber app. verifier checks access tokens; reads take optional auth so
// anonymous requests still work, mutations require it.
func Setup(app *fiber.App, h *Handlers, verifier *auth.JWTManager, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	requireAuth := middleware.NewRequireAuth(verifier)
	optionalAuth := middleware.NewOptionalAuth(verifier)

	authLimit := middleware.NewAuthRateLimiter().Handler()
	toggleLimit := middleware.NewToggleRateLimiter().Handler()
	writeLimit := middleware.NewWriteRateLimiter().Handler()
	readLimit := middleware.NewReadRateLimiter().Handler()

	// Health and metrics (outside the API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api/v1")

	// User and auth routes
	users := api.Group("/users")
	users.Post("/register", h.Auth.Register, authLimit)
	users.Post("/login", h.Auth.Login, authLimit)
	users.Post("/refresh-token", h.Auth.Refresh, authLimit)
	users.Post("/logout", h.Auth.Logout, requireAuth)
	users.Get("/current-user", h.User.Current, requireAuth)
	users.Patch("/update-account", h.User.UpdateProfile, requireAuth, writeLimit)
	users.Get("/c/:username", h.User.ChannelProfile, optionalAuth, readLimit)
	users.Get("/history", h.User.WatchHistory, requireAuth, readLimit)

	// Video routes
	videos := api.Group("/videos")
	videos.Get("/", h.Video.List, optionalAuth, readLimit)
	videos.Post("/", h.Video.Publish, requireAuth, writeLimit)
	videos.Get("/:videoId", h.Video.Watch, optionalAuth, readLimit)
	videos.Patch("/:videoId", h.Video.Update, requireAuth, writeLimit)
	videos.Delete("/:videoId", h.Video.Delete, requireAuth, writeLimit)
	videos.Patch("/toggle/publish/:videoId", h.Video.TogglePublish, requireAuth, toggleLimit)

	// Comment routes
	comments := api.Group("/comments")
	comments.Get("/:videoId", h.Comment.List, optionalAuth, readLimit)
	comments.Post("/:videoId", h.Comment.Add, requireAuth, writeLimit)
	comments.Patch("/c/:commentId", h.Comment.Update, requireAuth, writeLimit)
	comments.Delete("/c/:commentId", h.Comment.Delete, requireAuth, writeLimit)

	// Like routes
	likes := api.Group("/likes", requireAuth)
	likes.Post("/toggle/v/:videoId", h.Like.ToggleVideo, toggleLimit)
	likes.Post("/toggle/c/:commentId", h.Like.ToggleComment, toggleLimit)
	likes.Post("/toggle/t/:tweetId", h.Like.ToggleTweet, toggleLimit)
	likes.Get("/videos", h.Like.LikedVideos, readLimit)

	// Subscription routes
	subs := api.Group("/subscriptions")
	subs.Post("/c/:channelId", h.Subscription.Toggle, requireAuth, toggleLimit)
	subs.Get("/c/:channelId", h.Subscription.Subscribers, optionalAuth, readLimit)
	subs.Get("/u/:subscriberId", h.Subscription.SubscribedTo, optionalAuth, readLimit)

	// Playlist routes
	playlists := api.Group("/playlists")
	playlists.Post("/", h.Playlist.Create, requireAuth, writeLimit)
	playlists.Get("/user/:userId", h.Playlist.ListByUser, optionalAuth, readLimit)
	playlists.Get("/:playlistId", h.Playlist.Get, optionalAuth, readLimit)
	playlists.Patch("/:playlistId", h.Playlist.Update, requireAuth, writeLimit)
	playlists.Delete("/:playlistId", h.Playlist.Delete, requireAuth, writeLimit)
	playlists.Patch("/add/:videoId/:playlistId", h.Playlist.AddVideo, requireAuth, writeLimit)
	playlists.Patch("/remove/:videoId/:playlistId", h.Playlist.RemoveVideo, requireAuth, writeLimit)

	// Tweet routes
	tweets := api.Group("/tweets")
	tweets.Post("/", h.Tweet.Create, requireAuth, writeLimit)
	tweets.Get("/user/:userId", h.Tweet.ListByUser, optionalAuth, readLimit)
	tweets.Patch("/:tweetId", h.Tweet.Update, requireAuth, writeLimit)
	tweets.Delete("/:tweetId", h.Tweet.Delete, requireAuth, writeLimit)
}
