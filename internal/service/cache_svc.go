package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Video detail is short-lived because view counts move fast;
// channel profiles tolerate more staleness.
const (
	VideoCacheTTL   = 5 * time.Minute
	ChannelCacheTTL = 15 * time.Minute
)

// CacheService is a Redis cache-aside layer for the two read-heavy views:
// anonymous video detail and channel profiles.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService connects to Redis. If redisURL is empty or the connection
// fails, the returned service has a nil client and every operation is a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetVideo retrieves a cached video detail view. Returns nil when not cached
// or caching is disabled.
func (c *CacheService) GetVideo(ctx context.Context, videoID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, videoKey(videoID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetVideo stores a composed video detail view.
func (c *CacheService) SetVideo(ctx context.Context, videoID string, view interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, videoKey(videoID), b, VideoCacheTTL).Err()
}

// InvalidateVideo drops a video from cache after any mutation that changes
// its detail view (edits, comments, like toggles, publish toggles).
func (c *CacheService) InvalidateVideo(ctx context.Context, videoID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, videoKey(videoID)).Err()
}

// GetChannel retrieves a cached channel profile. Returns nil when not cached.
func (c *CacheService) GetChannel(ctx context.Context, channelID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, channelKey(channelID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetChannel stores a composed channel profile.
func (c *CacheService) SetChannel(ctx context.Context, channelID string, view interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, channelKey(channelID), b, ChannelCacheTTL).Err()
}

// InvalidateChannel drops a channel profile after profile edits or
// subscription toggles.
func (c *CacheService) InvalidateChannel(ctx context.Context, channelID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, channelKey(channelID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func videoKey(videoID string) string {
	return fmt.Sprintf("video:detail:%s", videoID)
}

func channelKey(channelID string) string {
	return fmt.Sprintf("channel:profile:%s", channelID)
}
