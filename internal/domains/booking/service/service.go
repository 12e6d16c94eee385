package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/repository"
	"stay/internal/domains/reference"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"stay/shared/validator"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Booking interface {
	List(ctx context.Context, params gDto.QueryParams, guestID string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	guests reference.Guests
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Booking, guests reference.Guests, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		guests: guests,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, guestID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if params.Page < 1 {
		return res, failure.InvalidParameter(constant.RequestParamPage) //nolint:wrapcheck
	}

	if params.Limit < 1 {
		return res, failure.InvalidParameter(constant.RequestParamLimit) //nolint:wrapcheck
	}

	if guestID != constant.Empty && !validator.IsIDValid(guestID) {
		return res, failure.InvalidParameter(constant.RequestParamGuestID) //nolint:wrapcheck
	}

	filter := shared.FilterByReference(guestID, model.FieldGuestIDs, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheList, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	var (
		totalCount int
		bookings   []model.Booking
	)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var countErr error

		totalCount, countErr = s.repo.EstimatedCount(gctx)
		if countErr != nil {
			return fmt.Errorf("failed to count bookings: %w", countErr)
		}

		return nil
	})

	group.Go(func() error {
		var getErr error

		bookings, getErr = s.repo.GetAll(gctx, params, filter)
		if getErr != nil {
			return fmt.Errorf("failed to get bookings: %w", getErr)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, err //nolint:wrapcheck
	}

	res.FromModels(bookings, params, totalCount)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIDValid(id) {
		return res, failure.InvalidID(id) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(model.CacheGet, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guestIDs, err := s.guests.Validate(ctx, req.GuestIDs)
	if err != nil {
		return res, fmt.Errorf("failed to validate guest ids: %w", err)
	}

	booking := req.ToModel(guestIDs)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	if err = s.guests.AddReferenceTo(ctx, booking.ID, guestIDs); err != nil {
		return res, fmt.Errorf("failed to link guests to booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIDValid(id) {
		return res, failure.InvalidID(id) //nolint:wrapcheck
	}

	var guestIDs gModel.IDs

	if req.GuestIDs != nil {
		guestIDs, err = s.guests.Validate(ctx, *req.GuestIDs)
		if err != nil {
			return res, fmt.Errorf("failed to validate guest ids: %w", err)
		}
	}

	old, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req)
	if req.GuestIDs != nil {
		updatedFields[model.FieldGuestIDs] = guestIDs
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	if req.GuestIDs != nil {
		if err = s.guests.RemoveReferenceFrom(ctx, id, old.GuestIDs); err != nil {
			return res, fmt.Errorf("failed to unlink guests from booking: %w", err)
		}

		if err = s.guests.AddReferenceTo(ctx, id, guestIDs); err != nil {
			return res, fmt.Errorf("failed to link guests to booking: %w", err)
		}
	}

	updated, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIDValid(id) {
		return res, failure.InvalidID(id) //nolint:wrapcheck
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	if err = s.guests.RemoveReferenceFrom(ctx, id, booking.GuestIDs); err != nil {
		return res, fmt.Errorf("failed to unlink guests from booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

// find returns the booking with the given id or a not found failure.
func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.BookingNotFound(id) //nolint:wrapcheck
	}

	return booking, nil
}

// invalidate drops the cached booking and every cached page before the write returns.
// Cache errors are logged and never fail the write.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, model.CacheList)
}
