package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/vbonduro/salesdash/internal/apiclient"
	"github.com/vbonduro/salesdash/internal/config"
	"github.com/vbonduro/salesdash/internal/inventory"
	"github.com/vbonduro/salesdash/internal/logging"
	"github.com/vbonduro/salesdash/internal/sales"
	"github.com/vbonduro/salesdash/internal/web"
	"github.com/vbonduro/salesdash/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	defer func() {
		if err := api.Close(); err != nil {
			logger.Error("failed to close api client", zap.Error(err))
		}
	}()
	logger.Info("using inventory api", zap.String("base_url", cfg.APIBaseURL))

	productService := inventory.NewProductService(api)
	salesService := sales.NewSalesService(api)

	server := web.NewServer(
		sales.NewDashboard(salesService, logger),
		salesService,
		inventory.NewCatalogLoader(productService),
		productService,
		templates.FS,
		logger,
	)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", zap.Error(err))
	}
}
