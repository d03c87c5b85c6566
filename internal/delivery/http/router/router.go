// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"finsight/internal/delivery/http/middleware"
	"finsight/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IntegrationHandler *handler.IntegrationHandler
	InsightHandler     *handler.InsightHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	integrationHandler *handler.IntegrationHandler
	insightHandler     *handler.InsightHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		integrationHandler: params.IntegrationHandler,
		insightHandler:     params.InsightHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// The OAuth callback is reached by provider redirect; the pending state
	// parameter carries the user binding, so no bearer token is required.
	e.GET("/integrations/callback", r.integrationHandler.Callback)

	// Provider integration routes that require authentication
	integrationGroup := e.Group("/integrations")
	integrationGroup.Use(r.authMiddleware.Authenticate)
	{
		integrationGroup.GET("", r.integrationHandler.ListConnections)
		integrationGroup.POST("/sync", r.integrationHandler.SyncAll)
		integrationGroup.GET("/:provider/connect", r.integrationHandler.Connect)
		integrationGroup.POST("/:provider/sync", r.integrationHandler.SyncProvider)
		integrationGroup.DELETE("/:provider", r.integrationHandler.Disconnect)
	}

	// Insight routes that require authentication
	insightGroup := e.Group("/insights")
	insightGroup.Use(r.authMiddleware.Authenticate)
	{
		insightGroup.POST("", r.insightHandler.Generate)
	}
}
