package reference

import (
	"context"
	"fmt"
	"stay/infras/otel"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/repository"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Bookings synchronizes the reference lists stored on bookings.
type Bookings interface {
	Synchronizer
}

func NewBookings(repo repository.Booking, cache cache.RedisCache, otel otel.Otel) Bookings {
	return New(&bookingTarget{repo: repo, cache: cache}, otel)
}

type bookingTarget struct {
	repo  repository.Booking
	cache cache.RedisCache
}

func (t *bookingTarget) Name() string {
	return model.EntityName
}

func (t *bookingTarget) Exist(ctx context.Context, id string) (bool, error) {
	exist, err := t.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	return exist, nil
}

func (t *bookingTarget) References(ctx context.Context, id string) (gModel.IDs, bool, error) {
	booking, err := t.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID, model.FieldGuestIDs)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return nil, false, nil
	}

	return booking.GuestIDs, true, nil
}

func (t *bookingTarget) SetReferences(ctx context.Context, id string, ids gModel.IDs) error {
	fields := map[string]any{
		model.FieldGuestIDs:      ids,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err := t.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update booking references: %w", err)
	}

	c := context.WithoutCancel(ctx)

	if err := t.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(c, t.cache, model.CacheList)

	return nil
}

func (t *bookingTarget) NotFound(id string) error {
	return failure.BookingNotFound(id) //nolint:wrapcheck
}
