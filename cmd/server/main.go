package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/config"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/db"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/handler"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/repository"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/router"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/view"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/auth"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "vidtube-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	handler.InitMetrics(pool)

	st := repository.New(pool)
	composer := view.NewComposer(st)
	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	accessTokens := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	refreshTokens := auth.NewJWTManager(cfg.RefreshTokenSecret, cfg.RefreshTokenTTL)

	authSvc := service.NewAuthService(st.Users, accessTokens, refreshTokens)
	userSvc := service.NewUserService(st.Users, composer, cache)
	videoSvc := service.NewVideoService(st, composer, cache)
	commentSvc := service.NewCommentService(st, composer, cache)
	likeSvc := service.NewLikeService(st, composer, cache)
	subSvc := service.NewSubscriptionService(st, composer, cache)
	playlistSvc := service.NewPlaylistService(st, composer)
	tweetSvc := service.NewTweetService(st, composer)

	h := &router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		User:         handler.NewUserHandler(userSvc),
		Video:        handler.NewVideoHandler(videoSvc),
		Comment:      handler.NewCommentHandler(commentSvc),
		Like:         handler.NewLikeHandler(likeSvc),
		Subscription: handler.NewSubscriptionHandler(subSvc),
		Playlist:     handler.NewPlaylistHandler(playlistSvc),
		Tweet:        handler.NewTweetHandler(tweetSvc),
		Health:       handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "VidTube API",
		ServerHeader: "VidTube",
	})
	router.Setup(app, h, accessTokens, cfg.CORSOrigins)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("VidTube backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
