package main

import (
	"log"

	orderapp "github.com/oasis00-1/oasis-springs-app/internal/application/order"
	"github.com/oasis00-1/oasis-springs-app/internal/application/report"
	"github.com/oasis00-1/oasis-springs-app/internal/config"
	domain "github.com/oasis00-1/oasis-springs-app/internal/domain/order"
	ginserver "github.com/oasis00-1/oasis-springs-app/internal/infrastructure/http/gin"
	"github.com/oasis00-1/oasis-springs-app/internal/infrastructure/http/mpesa"
	"github.com/oasis00-1/oasis-springs-app/internal/infrastructure/pdf"
	"github.com/oasis00-1/oasis-springs-app/internal/infrastructure/persistence/csvstore"
	"github.com/oasis00-1/oasis-springs-app/internal/interfaces/http/handler"
	"github.com/oasis00-1/oasis-springs-app/internal/interfaces/http/router"
	"github.com/oasis00-1/oasis-springs-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer appLog.Sync()

	catalog := make(domain.Catalog, 0, len(cfg.Catalog.Products))
	for _, p := range cfg.Catalog.Products {
		catalog = append(catalog, domain.Product{Name: p.Name, Price: p.Price})
	}
	fees := domain.FeeTable(cfg.Catalog.DeliveryFees)

	store := csvstore.New(cfg.Store)
	gateway := mpesa.NewClient(cfg.Mpesa)
	receipts := pdf.NewRenderer(cfg.Receipt, cfg.Mpesa)

	orderService := orderapp.NewService(catalog, fees, store, gateway, receipts, cfg.Mpesa, appLog)
	reportService := report.NewService(store)

	orderHandler := handler.NewOrderHandler(orderService)
	adminHandler := handler.NewAdminHandler(reportService)

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, orderHandler, adminHandler)

	appLog.Info("starting order intake server",
		logger.String("addr", cfg.Server.Address()),
		logger.String("store", cfg.Store.Path))

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		appLog.Fatal("server run failed", logger.Error(err))
	}
}
