package reference

import (
	"context"
	"fmt"
	"stay/infras/otel"
	"stay/internal/domains/guest/model"
	"stay/internal/domains/guest/repository"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Guests synchronizes the reference lists stored on guests.
type Guests interface {
	Synchronizer
}

func NewGuests(repo repository.Guest, cache cache.RedisCache, otel otel.Otel) Guests {
	return New(&guestTarget{repo: repo, cache: cache}, otel)
}

type guestTarget struct {
	repo  repository.Guest
	cache cache.RedisCache
}

func (t *guestTarget) Name() string {
	return model.EntityName
}

func (t *guestTarget) Exist(ctx context.Context, id string) (bool, error) {
	exist, err := t.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	return exist, nil
}

func (t *guestTarget) References(ctx context.Context, id string) (gModel.IDs, bool, error) {
	guest, err := t.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID, model.FieldBookingIDs)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return nil, false, nil
	}

	return guest.BookingIDs, true, nil
}

func (t *guestTarget) SetReferences(ctx context.Context, id string, ids gModel.IDs) error {
	fields := map[string]any{
		model.FieldBookingIDs:    ids,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err := t.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update guest references: %w", err)
	}

	c := context.WithoutCancel(ctx)

	if err := t.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest from cache")
	}

	shared.InvalidateCaches(c, t.cache, model.CacheList)

	return nil
}

func (t *guestTarget) NotFound(id string) error {
	return failure.GuestNotFound(id) //nolint:wrapcheck
}
