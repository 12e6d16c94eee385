package redis

import (
	"context"
	"net"
	"stay/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// New connects to Redis when the cache or the rate limiter needs it, nil otherwise.
func New(config *config.Config) *goRedis.Client {
	if !config.Cache.Enable && !config.App.RateLimiter.Enable {
		log.Info().Msg("Redis not required, skipping connection")

		return nil
	}

	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Bool("cache", config.Cache.Enable).
		Bool("rateLimiter", config.App.RateLimiter.Enable).
		Msg("Connected to Redis")

	return client
}
