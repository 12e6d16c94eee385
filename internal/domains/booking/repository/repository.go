package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stay/config"
	mongodb "stay/infras/mongo"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/booking/model"
	gDto "stay/shared/dto"
	gRepo "stay/shared/repository"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	EstimatedCount(ctx context.Context) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Store[model.Booking]
}

// New returns the bookings store for the configured driver.
func New(cfg *config.Config, pg *postgres.Connection, mg *mongodb.Connection, otel otel.Otel) Booking {
	if cfg.DB.Driver == config.DriverPostgres {
		return &repositoryImpl{
			Store: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, pg, otel),
		}
	}

	document := gRepo.NewDocument[model.Booking](model.EntityName, model.TableName, mg, otel)

	if err := document.EnsureIndexes(context.Background(), model.FieldGuestIDs); err != nil {
		log.Warn().Err(err).Msg("failed to ensure booking indexes")
	}

	return &repositoryImpl{
		Store: document,
	}
}
