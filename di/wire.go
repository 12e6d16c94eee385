//go:build wireinject
// +build wireinject

package di

import (
	"stay/config"
	"stay/internal/domains/reference"
	"stay/shared/cache"
	"stay/transport/http"
	"stay/transport/http/middleware"
	"stay/transport/http/router"

	bookingRepository "stay/internal/domains/booking/repository"
	bookingService "stay/internal/domains/booking/service"
	bookingHandler "stay/internal/handlers/booking"

	guestRepository "stay/internal/domains/guest/repository"
	guestService "stay/internal/domains/guest/service"
	guestHandler "stay/internal/handlers/guest"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	providePostgres,
	provideMongo,
	provideOtel,
	provideRedis,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	reference.NewGuests,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	reference.NewBookings,
	bookingService.New,
)

var domains = wire.NewSet(
	guestDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	guestHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil
}
