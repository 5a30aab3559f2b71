// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lanche/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler     *handler.MenuHandler
	CartHandler     *handler.CartHandler
	ToastHandler    *handler.ToastHandler
	CheckoutHandler *handler.CheckoutHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	menuHandler     *handler.MenuHandler
	cartHandler     *handler.CartHandler
	toastHandler    *handler.ToastHandler
	checkoutHandler *handler.CheckoutHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		menuHandler:     params.MenuHandler,
		cartHandler:     params.CartHandler,
		toastHandler:    params.ToastHandler,
		checkoutHandler: params.CheckoutHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Page routes
	e.GET("/", r.menuHandler.Home)
	e.GET("/menu", r.menuHandler.Menu)
	e.GET("/menu/qr", r.menuHandler.MenuQR)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.POST("/items/:id/increment", r.cartHandler.IncrementItem)
		cartGroup.POST("/items/:id/decrement", r.cartHandler.DecrementItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Toast routes
	toastGroup := e.Group("/notifications")
	{
		toastGroup.GET("", r.toastHandler.ListToasts)
		toastGroup.POST("", r.toastHandler.ShowToast)
		toastGroup.DELETE("/:id", r.toastHandler.DismissToast)
	}

	// Checkout overlay routes
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.GET("", r.checkoutHandler.State)
		checkoutGroup.POST("/open", r.checkoutHandler.Open)
		checkoutGroup.POST("/close", r.checkoutHandler.Close)
	}
}
