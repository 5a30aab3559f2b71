package handler

import (
	"log/slog"
	"net/http"

	"lanche/internal/delivery/http/response"
	"lanche/internal/domain/entity"
	"lanche/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC  usecase.CartUsecase
	ToastUC usecase.ToastUsecase
	Logger  *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC  usecase.CartUsecase
	toastUC usecase.ToastUsecase
	logger  *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:  params.CartUC,
		toastUC: params.ToastUC,
		logger:  params.Logger,
	}
}

// AddItemRequest represents the request body for adding a customized item
type AddItemRequest struct {
	ProductID          int      `json:"product_id" validate:"required"`
	RemovedIngredients []string `json:"removed_ingredients"`
	AddonIDs           []int    `json:"addon_ids"`
	Flavor             string   `json:"flavor"`
	Size               string   `json:"size"`
	Observation        string   `json:"observation"`
	Quantity           int      `json:"quantity" validate:"gte=0"`
}

// cartView is the cart plus its derived totals as shown to the UI.
type cartView struct {
	Items      []entity.CartLineItem `json:"items"`
	TotalItems int                   `json:"totalItems"`
	TotalPrice float64               `json:"totalPrice"`
}

// GetCart returns the cart items and derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, cartView{
		Items:      h.cartUC.Items(),
		TotalItems: h.cartUC.TotalItems(),
		TotalPrice: h.cartUC.TotalPrice(),
	}, "")
}

// AddItem customizes a catalog product and appends it to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.cartUC.AddProduct(c.Request().Context(), req.ProductID, &usecase.Customization{
		RemovedIngredients: req.RemovedIngredients,
		AddonIDs:           req.AddonIDs,
		Flavor:             req.Flavor,
		Size:               req.Size,
		Observation:        req.Observation,
		Quantity:           req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.toastUC.Show(item.Name+" adicionado ao carrinho", "")

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// IncrementItem increases the quantity of a line item by one.
func (h *CartHandler) IncrementItem(c echo.Context) error {
	h.cartUC.IncrementItem(c.Request().Context(), c.Param("id"))

	return h.GetCart(c)
}

// DecrementItem decreases the quantity of a line item by one, removing it
// at quantity one.
func (h *CartHandler) DecrementItem(c echo.Context) error {
	h.cartUC.DecrementItem(c.Request().Context(), c.Param("id"))

	return h.GetCart(c)
}

// RemoveItem removes a line item from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	h.cartUC.RemoveItem(c.Request().Context(), c.Param("id"))

	return h.GetCart(c)
}
