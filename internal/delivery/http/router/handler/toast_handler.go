package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"lanche/internal/delivery/http/response"
	"lanche/internal/domain/entity"
	"lanche/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ToastHandlerParams holds dependencies for ToastHandler, injected by Fx.
type ToastHandlerParams struct {
	fx.In

	ToastUC usecase.ToastUsecase
	Logger  *slog.Logger
}

// ToastHandler holds dependencies for toast-related handlers
type ToastHandler struct {
	toastUC usecase.ToastUsecase
	logger  *slog.Logger
}

// NewToastHandler is the constructor for ToastHandler
func NewToastHandler(params ToastHandlerParams) *ToastHandler {
	return &ToastHandler{
		toastUC: params.ToastUC,
		logger:  params.Logger,
	}
}

// ShowToastRequest represents the request body for showing a toast
type ShowToastRequest struct {
	Message string `json:"message" validate:"required"`
	Kind    string `json:"kind" validate:"omitempty,oneof=success error info"`
}

// ListToasts returns the live toast list.
func (h *ToastHandler) ListToasts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.toastUC.Toasts(), "")
}

// ShowToast appends a new toast.
func (h *ToastHandler) ShowToast(c echo.Context) error {
	var req ShowToastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toast input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	toast := h.toastUC.Show(req.Message, entity.ToastKind(req.Kind))

	return response.Success(c, http.StatusCreated, toast, "")
}

// DismissToast removes a toast early.
func (h *ToastHandler) DismissToast(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid toast ID")
	}

	h.toastUC.Dismiss(id)

	return response.Success(c, http.StatusOK, nil, "Toast dismissed")
}
