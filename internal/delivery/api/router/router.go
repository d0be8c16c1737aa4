// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"autoserv/config"
	"autoserv/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	CatalogHandler *handler.CatalogHandler
	SystemHandler  *handler.SystemHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	catalogHandler *handler.CatalogHandler
	systemHandler  *handler.SystemHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		catalogHandler: params.CatalogHandler,
		systemHandler:  params.SystemHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", r.systemHandler.Health)
	api.POST("/echo", r.systemHandler.Echo)

	api.GET("/services", r.catalogHandler.ListServices)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Failure simulation is only exposed when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		e.GET("/api/break", r.systemHandler.Break)
	}
}
