package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Irfaaanz/Opto5/internal/config"
	"github.com/Irfaaanz/Opto5/internal/handler"
	"github.com/Irfaaanz/Opto5/internal/middleware"
	"github.com/Irfaaanz/Opto5/internal/repository"
	"github.com/Irfaaanz/Opto5/internal/seed"
	"github.com/Irfaaanz/Opto5/internal/service"
)

// main is the application entrypoint for the Opto5 inventory API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting opto5 api")

	// 3. Initialize stores. All state is process-local: the engine performs
	// no I/O and nothing is persisted across restarts.
	spectacleRepo := repository.NewSpectacleRepository()
	lensRepo := repository.NewLensRepository()
	inventoryRepo := repository.NewInventoryRepository()
	ledgerRepo := repository.NewLedgerRepository()

	if cfg.SeedDemoData {
		seed.Load(spectacleRepo, lensRepo, inventoryRepo)
	}

	// 4. Initialize services
	catalogSvc := service.NewCatalogService(spectacleRepo, lensRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo, cfg.Inventory)
	ledgerSvc := service.NewLedgerService(inventoryRepo, ledgerRepo, catalogSvc)
	dashboardSvc := service.NewDashboardService(catalogSvc, inventorySvc, ledgerRepo)

	// 5. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(),
		Product:   handler.NewProductHandler(catalogSvc),
		Inventory: handler.NewInventoryHandler(inventorySvc),
		StockFlow: handler.NewStockFlowHandler(ledgerSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
	}

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers)

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 9. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Product   *handler.ProductHandler
	Inventory *handler.InventoryHandler
	StockFlow *handler.StockFlowHandler
	Dashboard *handler.DashboardHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Product catalog, one set of routes per variant collection
	products := router.Group("/v1/products")
	{
		products.GET("/spectacles", handlers.Product.ListSpectacles)
		products.GET("/spectacles/:id", handlers.Product.GetSpectacle)
		products.POST("/spectacles", handlers.Product.CreateSpectacle)
		products.PUT("/spectacles/:id", handlers.Product.UpdateSpectacle)
		products.DELETE("/spectacles/:id", handlers.Product.DeleteSpectacle)

		products.GET("/lenses", handlers.Product.ListLenses)
		products.GET("/lenses/:id", handlers.Product.GetLens)
		products.POST("/lenses", handlers.Product.CreateLens)
		products.PUT("/lenses/:id", handlers.Product.UpdateLens)
		products.DELETE("/lenses/:id", handlers.Product.DeleteLens)
	}

	// Inventory overview
	router.GET("/v1/inventory", handlers.Inventory.ListInventory)

	// Stock flow
	transactions := router.Group("/v1/stock-transactions")
	{
		transactions.GET("", handlers.StockFlow.ListTransactions)
		transactions.POST("", handlers.StockFlow.RecordTransaction)
		transactions.GET("/reasons", handlers.StockFlow.GetReasons)
	}

	// Dashboard
	router.GET("/v1/dashboard/summary", handlers.Dashboard.GetSummary)
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
