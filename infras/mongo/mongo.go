package mongo

import (
	"context"
	"stay/config"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// New connects to the document store when it is the configured driver. It returns nil for
// any other driver so the SQL stack can be wired without a running MongoDB.
func New(cfg *config.Config) *Connection {
	if cfg.DB.Driver != "" && cfg.DB.Driver != config.DriverMongo {
		return nil
	}

	timeout := time.Duration(cfg.DB.Mongo.TimeoutSeconds) * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.DB.Mongo.URI).
		SetAppName(cfg.App.Name).
		SetTimeout(timeout))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping MongoDB")
	}

	log.Info().
		Str("database", cfg.DB.Mongo.Database).
		Msg("Connected to MongoDB")

	return &Connection{
		Client:   client,
		Database: client.Database(cfg.DB.Mongo.Database),
	}
}

func (c *Connection) Collection(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

func (c *Connection) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx) //nolint:wrapcheck
}
