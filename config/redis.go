package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the shared client used by the rate limiter. Redis
// being down is non-fatal: the limiter passes requests through while
// RedisClient stays nil.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL: %v", err)
		return
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("⚠️  Redis unreachable, rate limiting disabled: %v", err)
		return
	}

	RedisClient = client
	log.Println("✅ Connected to Redis")
}
