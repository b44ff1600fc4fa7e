//go:build wireinject
// +build wireinject

package di

import (
	"pureheart/config"
	"pureheart/infras/otel"
	"pureheart/infras/postgres"
	"pureheart/infras/redis"
	"pureheart/permissions"
	"pureheart/shared/cache"
	"pureheart/transport/http"
	"pureheart/transport/http/middleware"
	"pureheart/transport/http/router"

	layoutRepository "pureheart/internal/domains/layout/repository"
	layoutService "pureheart/internal/domains/layout/service"
	reservationEvent "pureheart/internal/domains/reservation/event"
	reservationRepository "pureheart/internal/domains/reservation/repository"
	reservationService "pureheart/internal/domains/reservation/service"
	roomRepository "pureheart/internal/domains/room/repository"
	roomService "pureheart/internal/domains/room/service"

	layoutHandler "pureheart/internal/handlers/layout"
	reservationHandler "pureheart/internal/handlers/reservation"
	roomHandler "pureheart/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var layoutDomain = wire.NewSet(
	layoutRepository.New,
	layoutService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationEvent.NewPublisher,
	reservationService.New,
)

var domains = wire.NewSet(
	roomDomain,
	layoutDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	layoutHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}
