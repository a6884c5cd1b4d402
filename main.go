package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lomasaltas/boxcode/config"
	"github.com/lomasaltas/boxcode/docs"
	"github.com/lomasaltas/boxcode/internal/cache"
	"github.com/lomasaltas/boxcode/internal/database"
	"github.com/lomasaltas/boxcode/internal/handlers"
	"github.com/lomasaltas/boxcode/internal/metrics"
	"github.com/lomasaltas/boxcode/internal/middleware"
	"github.com/lomasaltas/boxcode/internal/repository"
	"github.com/lomasaltas/boxcode/internal/services"
	"github.com/lomasaltas/boxcode/internal/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Box Code API
// @version 1.0
// @description Parses and validates the 16-digit codes printed on egg boxes at the packing stations.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	plantLoc := util.LoadPlantLocation(cfg.PlantTZ)

	// Create context for initialization
	ctx := context.Background()

	// The scan log is optional; without PG_URL scans stay in memory
	var store services.ScanStore
	if cfg.PGURL != "" {
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to create scan log schema: %v", err)
		}
		store = repository.NewScanRepository(db.Pool)
	} else {
		log.Warn("PG_URL not set, scan log disabled")
	}

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	// Initialize caches
	history := cache.NewScanHistory(cfg.HistorySize)

	// Initialize services
	validationSvc := services.NewValidationService(history, store, recorder, plantLoc)
	batchSvc := services.NewBatchService(validationSvc, cfg.BatchWorkers, cfg.MaxBatchSize)

	// Initialize handlers
	codeHandler := handlers.NewCodeHandler(validationSvc, batchSvc)
	historyHandler := handlers.NewHistoryHandler(validationSvc)

	// Setup Gin router
	if level < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Code routes
	api := router.Group("/")
	api.Use(middleware.IdentifyStation())
	api.POST("/codes/validate", codeHandler.Validate)
	api.POST("/codes/validate/batch", codeHandler.ValidateBatch)
	api.POST("/codes/encode", codeHandler.Encode)
	api.GET("/codes/help/:field", codeHandler.Help)
	api.GET("/reference", codeHandler.Reference)

	// Station routes
	api.GET("/stations/history", historyHandler.Get)
	api.DELETE("/stations/history", historyHandler.Reset)
	api.GET("/scans/:id", historyHandler.GetScan)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Info("Server exited")
}
