// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"financas/internal/delivery/http/middleware"
	"financas/internal/delivery/http/router/handler"
	"financas/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	EntryHandler   *handler.EntryHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	entryHandler   *handler.EntryHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		entryHandler:   params.EntryHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)

	// Routes that require a valid session
	sessionGroup := e.Group("")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("/me", r.accountHandler.Me)
		sessionGroup.GET("/dashboard", r.accountHandler.Dashboard)

		sessionGroup.GET("/orcamentos", r.entryHandler.List)
		sessionGroup.POST("/orcamentos", r.entryHandler.Create)
		sessionGroup.DELETE("/orcamentos/:id", r.entryHandler.Delete)
	}

	// Administration routes: valid session plus the user-management capability
	adminGroup := e.Group("/usuarios")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireCapability(entity.CapabilityManageUsers))
	{
		adminGroup.GET("", r.adminHandler.ListUsers)
		adminGroup.PUT("/:id/role", r.adminHandler.UpdateRole)
	}
}
