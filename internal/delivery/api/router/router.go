// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"calbridge/config"
	"calbridge/internal/delivery/api/middleware"
	"calbridge/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CalendarHandler *handler.CalendarHandler
	TimeHandler     *handler.TimeHandler
	Gatherer        prometheus.Gatherer
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	calendarHandler *handler.CalendarHandler
	timeHandler     *handler.TimeHandler
	gatherer        prometheus.Gatherer
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		calendarHandler: params.CalendarHandler,
		timeHandler:     params.TimeHandler,
		gatherer:        params.Gatherer,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	// The consent redirect lands here without a calendar key
	e.GET("/api/calendar", r.calendarHandler.AuthorizationCallback)

	calendarKey := middleware.NewCalendarKeyMiddleware(r.config)
	calendarGroup := e.Group("/api/calendar",
		calendarKey.Resolve,
		middleware.NewCalendarRateLimiter(r.config.HTTP.RateLimit),
	)
	{
		calendarGroup.POST("", r.calendarHandler.Operate)
		calendarGroup.DELETE("/session", r.calendarHandler.SignOut)
		calendarGroup.GET("/auth/qr", r.calendarHandler.AuthorizationQR)
	}

	timeGroup := e.Group("/api/time_assistant")
	{
		timeGroup.POST("/currentTime", r.timeHandler.CurrentTime)
	}
}
