//go:build wireinject
// +build wireinject

package di

import (
	"seastay/config"
	"seastay/infras/kafka"
	"seastay/infras/otel"
	"seastay/infras/payment"
	"seastay/infras/postgres"
	"seastay/infras/redis"
	"seastay/infras/s3"
	"seastay/internal/events"
	availabilityHandler "seastay/internal/handlers/availability"
	bookingHandler "seastay/internal/handlers/booking"
	photoHandler "seastay/internal/handlers/photo"
	propertyHandler "seastay/internal/handlers/property"
	webhookHandler "seastay/internal/handlers/webhook"
	"seastay/shared/cache"
	"seastay/transport/http"
	"seastay/transport/http/middleware"
	"seastay/transport/http/router"

	bookingRepository "seastay/internal/domains/booking/repository"
	bookingService "seastay/internal/domains/booking/service"
	calendarRepository "seastay/internal/domains/calendar/repository"
	calendarService "seastay/internal/domains/calendar/service"
	photoRepository "seastay/internal/domains/photo/repository"
	photoService "seastay/internal/domains/photo/service"
	propertyRepository "seastay/internal/domains/property/repository"
	propertyService "seastay/internal/domains/property/service"

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
	s3.New,
	payment.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var calendarDomain = wire.NewSet(
	calendarRepository.New,
	calendarService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var photoDomain = wire.NewSet(
	photoRepository.New,
	photoService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	calendarDomain,
	bookingDomain,
	photoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	propertyHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	webhookHandler.New,
	photoHandler.New,
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
