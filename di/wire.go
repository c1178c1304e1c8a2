//go:build wireinject
// +build wireinject

package di

import (
	"stay/config"
	"stay/infras/kafka"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/infras/redis"
	"stay/jobs"
	"stay/shared/cache"
	"stay/transport/http"
	"stay/transport/http/middleware"
	"stay/transport/http/router"

	availabilityRepository "stay/internal/domains/availability/repository"
	availabilityService "stay/internal/domains/availability/service"
	bookingRepository "stay/internal/domains/booking/repository"
	bookingService "stay/internal/domains/booking/service"
	hotelRepository "stay/internal/domains/hotel/repository"
	hotelService "stay/internal/domains/hotel/service"
	pricingRepository "stay/internal/domains/pricing/repository"

	bookingHandler "stay/internal/handlers/booking"
	hotelHandler "stay/internal/handlers/hotel"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	pricingDomain,
	availabilityDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	hotelHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		jobs.NewMaintenance,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
