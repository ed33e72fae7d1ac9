package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"storefront_settlement/pkg"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the cache client shared by the participants index
// and the consumers' processed markers.
//
// Supported env vars:
//   - CACHE_HOST (default: localhost)
//   - CACHE_PORT (default: 6379)
//   - CACHE_PASSWORD (optional)
func ConnectRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", pkg.GetEnv("CACHE_HOST", "localhost"), pkg.GetEnv("CACHE_PORT", "6379")),
		Password: pkg.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if pong, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("[cache] warning: could not connect to redis: %v", err)
	} else {
		log.Printf("[cache] connected to redis: %s", pong)
	}
	return client
}
