package config

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis initializes the shared client behind the search cache, the
// tag sets and the rate limiter. REDIS_URL carries host and auth; REDIS_DB
// can move the tagged search cache off the default database.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ invalid REDIS_URL: %v", err)
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if db, err := strconv.Atoi(raw); err == nil {
			opt.DB = db
		}
	}

	// every cached page write pipelines SET + SAdd + EXPIRE per tag, so
	// keep a few idle connections warm
	opt.PoolSize = 20
	opt.MinIdleConns = 2

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		log.Fatalf("❌ failed to connect to Redis: %v", err)
	}
	log.Printf("✅ Connected to Redis (db %d)", opt.DB)
}
