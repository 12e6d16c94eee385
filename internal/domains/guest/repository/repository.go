package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stay/config"
	mongodb "stay/infras/mongo"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/guest/model"
	gDto "stay/shared/dto"
	gRepo "stay/shared/repository"

	"github.com/rs/zerolog/log"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	EstimatedCount(ctx context.Context) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Store[model.Guest]
}

// New returns the guests store for the configured driver.
func New(cfg *config.Config, pg *postgres.Connection, mg *mongodb.Connection, otel otel.Otel) Guest {
	if cfg.DB.Driver == config.DriverPostgres {
		return &repositoryImpl{
			Store: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, pg, otel),
		}
	}

	document := gRepo.NewDocument[model.Guest](model.EntityName, model.TableName, mg, otel)

	if err := document.EnsureIndexes(context.Background(), model.FieldBookingIDs); err != nil {
		log.Warn().Err(err).Msg("failed to ensure guest indexes")
	}

	return &repositoryImpl{
		Store: document,
	}
}
