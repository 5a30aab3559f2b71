package handler

import (
	"net/http"

	"lanche/internal/delivery/http/response"
	"lanche/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
}

// CheckoutHandler exposes the checkout overlay flag.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
	}
}

// State returns whether the checkout overlay is open.
func (h *CheckoutHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{"open": h.checkoutUC.IsOpen()}, "")
}

// Open marks the checkout overlay as open.
func (h *CheckoutHandler) Open(c echo.Context) error {
	h.checkoutUC.Open()

	return h.State(c)
}

// Close marks the checkout overlay as closed.
func (h *CheckoutHandler) Close(c echo.Context) error {
	h.checkoutUC.Close()

	return h.State(c)
}
