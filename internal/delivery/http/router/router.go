// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"engage/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EngagementHandler *handler.EngagementHandler
	Gatherer          prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	engagementHandler *handler.EngagementHandler
	gatherer          prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		engagementHandler: params.EngagementHandler,
		gatherer:          params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	v1 := e.Group("/v1")
	{
		v1.POST("/locations", r.engagementHandler.UpdateLocation)

		v1.GET("/engagement", r.engagementHandler.GetStatus)
		v1.POST("/engagement/enable", r.engagementHandler.Enable)
		v1.POST("/engagement/disable", r.engagementHandler.Disable)

		v1.PUT("/notifications/permission", r.engagementHandler.SetPermission)

		v1.GET("/regions", r.engagementHandler.GetRegions)
		v1.GET("/history", r.engagementHandler.GetHistory)
		v1.GET("/merchants/:merchantId/stats", r.engagementHandler.GetMerchantStats)
	}
}
