package di

import (
	"context"
	"stay/config"
	"stay/helper"
	mongodb "stay/infras/mongo"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/infras/redis"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	ot := otel.New(cfg)

	return ot, func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()

		if err := ot.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}
}

func providePostgres(cfg *config.Config) (*postgres.Connection, func()) {
	conn := postgres.New(cfg)

	if conn != nil && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	return conn, func() {
		if conn == nil {
			return
		}

		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close postgres connections")
		}
	}
}

func provideMongo(cfg *config.Config) (*mongodb.Connection, func()) {
	conn := mongodb.New(cfg)

	return conn, func() {
		if conn == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()

		if err := conn.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}
}

func provideRedis(cfg *config.Config) (*goRedis.Client, func()) {
	client := redis.New(cfg)

	return client, func() {
		if client == nil {
			return
		}

		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis client")
		}
	}
}
