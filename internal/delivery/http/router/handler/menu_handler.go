package handler

import (
	"log/slog"
	"net/http"

	"lanche/config"
	"lanche/internal/delivery/http/response"
	"lanche/internal/domain/repository"
	"lanche/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	Config  *config.Config
	Catalog repository.CatalogRepository
	QRCode  service.QRCodeService
	Logger  *slog.Logger
}

// MenuHandler serves the home and menu pages.
type MenuHandler struct {
	cfg     *config.Config
	catalog repository.CatalogRepository
	qrcode  service.QRCodeService
	logger  *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		cfg:     params.Config,
		catalog: params.Catalog,
		qrcode:  params.QRCode,
		logger:  params.Logger,
	}
}

// Home serves the landing page data: the restaurant name and the menu
// categories.
func (h *MenuHandler) Home(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"name":       h.cfg.Env.ServiceName,
		"categories": h.catalog.ListCategories(),
	}, "")
}

// Menu serves the full product catalog.
func (h *MenuHandler) Menu(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.ListProducts(), "")
}

// MenuQR serves the printable QR code that links to the menu page.
func (h *MenuHandler) MenuQR(c echo.Context) error {
	png, err := h.qrcode.GenerateMenuQR()
	if err != nil {
		h.logger.Error("failed to generate menu QR code", slog.Any("error", err))

		return response.InternalServerError(c, "QRCODE_FAILED", "")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
