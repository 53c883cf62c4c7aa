package internal

import (
	"net/http"
	"yenboard/internal/controllers"
	"yenboard/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/rates", http.HandlerFunc(apiController.GetRates))
	routers.Get("/amount", http.HandlerFunc(apiController.GetAmount))
	routers.Post("/amount", http.HandlerFunc(apiController.SetAmount))
	routers.Post("/refresh", http.HandlerFunc(apiController.Refresh))
	return routers
}
