// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler *handler.CartHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler *handler.CartHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler: params.CartHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	cartGroup := e.Group("/cart")
	{
		// Derived views
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.GET("/summary", r.cartHandler.GetSummary)
		cartGroup.GET("/stores", r.cartHandler.GetStores)
		cartGroup.GET("/checkout", r.cartHandler.GetCheckout)
		cartGroup.GET("/conflict", r.cartHandler.GetConflict)

		// Mutations
		cartGroup.POST("/lines", r.cartHandler.AddLine)
		cartGroup.DELETE("/lines/:itemId", r.cartHandler.RemoveLine)
		cartGroup.PUT("/lines/:itemId/quantity", r.cartHandler.SetQuantity)
		cartGroup.POST("/lines/:itemId/decrease", r.cartHandler.DecreaseQuantity)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}
}
