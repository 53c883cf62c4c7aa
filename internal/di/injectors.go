//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"yenboard/internal"
	"yenboard/internal/clients"
	"yenboard/internal/controllers"
	"yenboard/internal/providers"
	"yenboard/internal/scheduler"
	"yenboard/internal/services"
	"yenboard/internal/structures"
)

var screenSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,
	clients.NewRateClient,
	services.NewScreenService,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		screenSet,
		providers.NewInstrumentedCacheProvider,

		scheduler.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitScreen(cfg *structures.CliFlags) (services.ScreenServiceInterface, error) {

	wire.Build(screenSet)

	return nil, nil
}
