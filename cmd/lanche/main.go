package main

import (
	"context"
	"log/slog"
	"os"

	"lanche/config"
	"lanche/internal/delivery"
	"lanche/internal/delivery/http"
	"lanche/internal/delivery/http/middleware"
	"lanche/internal/delivery/http/router/handler"
	"lanche/internal/domain/service"
	"lanche/internal/infra/catalog"
	logs "lanche/internal/infra/log"
	"lanche/internal/infra/persistence/localstore"
	"lanche/internal/infra/qrcode"
	"lanche/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			catalog.NewCatalogRepository,
			localstore.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the menu QR code service from config
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.Menu.BaseURL, cfg.Menu.QRSize, cfg.Menu.QRErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewToastService,
			impl.NewCheckoutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewToastHandler,
			handler.NewCheckoutHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
