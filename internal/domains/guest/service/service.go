package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/domains/guest/model"
	"stay/internal/domains/guest/model/dto"
	"stay/internal/domains/guest/repository"
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

type Guest interface {
	List(ctx context.Context, params gDto.QueryParams, bookingID string) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (dto.GuestResponse, error)
	Delete(ctx context.Context, id string) (dto.GuestResponse, error)
}

type serviceImpl struct {
	repo     repository.Guest
	bookings reference.Bookings
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Guest, bookings reference.Bookings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, bookingID string) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if params.Page < 1 {
		return res, failure.InvalidParameter(constant.RequestParamPage) //nolint:wrapcheck
	}

	if params.Limit < 1 {
		return res, failure.InvalidParameter(constant.RequestParamLimit) //nolint:wrapcheck
	}

	if bookingID != constant.Empty && !validator.IsIDValid(bookingID) {
		return res, failure.InvalidParameter(constant.RequestParamBookingID) //nolint:wrapcheck
	}

	filter := shared.FilterByReference(bookingID, model.FieldBookingIDs, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheList, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	var (
		totalCount int
		guests     []model.Guest
	)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var countErr error

		totalCount, countErr = s.repo.EstimatedCount(gctx)
		if countErr != nil {
			return fmt.Errorf("failed to count guests: %w", countErr)
		}

		return nil
	})

	group.Go(func() error {
		var getErr error

		guests, getErr = s.repo.GetAll(gctx, params, filter)
		if getErr != nil {
			return fmt.Errorf("failed to get guests: %w", getErr)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to list guests")

		return res, err //nolint:wrapcheck
	}

	res.FromModels(guests, params, totalCount)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save guests to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIDValid(id) {
		return res, failure.InvalidID(id) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(model.CacheGet, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(guest)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save guest to cache")
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookingIDs, err := s.bookings.Validate(ctx, req.BookingIDs)
	if err != nil {
		return res, fmt.Errorf("failed to validate booking ids: %w", err)
	}

	guest := req.ToModel(bookingIDs)

	if err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	if err = s.bookings.AddReferenceTo(ctx, guest.ID, bookingIDs); err != nil {
		return res, fmt.Errorf("failed to link bookings to guest: %w", err)
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIDValid(id) {
		return res, failure.InvalidID(id) //nolint:wrapcheck
	}

	var bookingIDs gModel.IDs

	if req.BookingIDs != nil {
		bookingIDs, err = s.bookings.Validate(ctx, *req.BookingIDs)
		if err != nil {
			return res, fmt.Errorf("failed to validate booking ids: %w", err)
		}
	}

	old, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req)
	if req.BookingIDs != nil {
		updatedFields[model.FieldBookingIDs] = bookingIDs
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return res, fmt.Errorf("failed to update guest: %w", err)
	}

	s.invalidate(ctx, id)

	if req.BookingIDs != nil {
		if err = s.bookings.RemoveReferenceFrom(ctx, id, old.BookingIDs); err != nil {
			return res, fmt.Errorf("failed to unlink bookings from guest: %w", err)
		}

		if err = s.bookings.AddReferenceTo(ctx, id, bookingIDs); err != nil {
			return res, fmt.Errorf("failed to link bookings to guest: %w", err)
		}
	}

	updated, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIDValid(id) {
		return res, failure.InvalidID(id) //nolint:wrapcheck
	}

	guest, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return res, fmt.Errorf("failed to delete guest: %w", err)
	}

	s.invalidate(ctx, id)

	if err = s.bookings.RemoveReferenceFrom(ctx, id, guest.BookingIDs); err != nil {
		return res, fmt.Errorf("failed to unlink bookings from guest: %w", err)
	}

	res.FromModel(guest)

	return res, nil
}

// find returns the guest with the given id or a not found failure.
func (s *serviceImpl) find(ctx context.Context, id string) (model.Guest, error) {
	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return guest, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return guest, failure.GuestNotFound(id) //nolint:wrapcheck
	}

	return guest, nil
}

// invalidate drops the cached guest and every cached page before the write returns.
// Cache errors are logged and never fail the write.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest from cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, model.CacheList)
}
