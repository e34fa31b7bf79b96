package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aurum-store/config"
	"aurum-store/internal/api"
	"aurum-store/internal/seed"
	"aurum-store/internal/service"
	"aurum-store/internal/store"
	"aurum-store/internal/util"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting aurum store")

	tp, err := util.InitTracer("aurum-store", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	// All state is volatile: seeded at start, lost on exit.
	catalog := store.NewCatalog(seed.Products(), seed.Categories())
	areas := store.NewServiceAreas(seed.Pincodes())
	ledger := store.NewLedger(seed.Orders())
	log.Printf("State seeded: %d products, %d categories, %d pincodes, %d orders",
		len(catalog.Products()), len(catalog.Categories()), areas.Len(), len(ledger.Orders()))

	gate := service.NewGateService(areas, cfg.Business.GateDelay)
	cart := service.NewCartService(catalog)
	payment := service.NewPaymentService(cfg.Business.PaymentDelay)
	checkout := service.NewCheckoutService(catalog, cart, ledger, payment)
	admin := service.NewAdminService(catalog, areas, ledger)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(gate, cart, checkout, admin, catalog, cfg.Admin.AccessKey)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
