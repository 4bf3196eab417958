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

	"shoeScout/app/echo-server/router"
	"shoeScout/business/catalog"
	"shoeScout/business/narrative"
	"shoeScout/business/recommend"
	"shoeScout/internal/middleware"
	"shoeScout/internal/repository/catalogfile"
	"shoeScout/internal/repository/ollama"
	psqlRepo "shoeScout/internal/repository/postgres"
	redisRepo "shoeScout/internal/repository/redis"
	"shoeScout/internal/rest"
	"shoeScout/pkg/config"
	"shoeScout/pkg/database"
	redisClient "shoeScout/pkg/database/redis"
	"shoeScout/pkg/logger"
	"shoeScout/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Shoe Scout", "version", cfg.App.Version)

	metrics.Init()

	// Catalog repository, file-backed or postgres-backed
	var catalogRepo catalog.CatalogRepository
	switch cfg.Catalog.Source {
	case "postgres":
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")
		catalogRepo = psqlRepo.NewShoeRepository(db)
	default:
		catalogRepo = catalogfile.NewCatalogFileRepository(cfg.Catalog.CatalogPath, cfg.Catalog.MarketContextPath)
	}

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	catalogService, err := catalog.NewCatalogService(loadCtx, catalogRepo)
	loadCancel()
	if err != nil {
		logger.Fatal("Failed to load catalog", "error", err)
	}

	// Optional narrative cache
	var narrativeCache narrative.Cache
	if cfg.Redis.Enabled {
		client, err := redisClient.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, narrative caching disabled", "error", err.Error())
		} else {
			defer redisClient.CloseRedisClient(client)
			narrativeCache = redisRepo.NewNarrativeCache(client, cfg.Redis.NarrativeTTL)
			logger.Info("Narrative cache enabled", "ttl", cfg.Redis.NarrativeTTL.String())
		}
	}

	ollamaRepo := ollama.NewOllamaRepository(ollama.OllamaConfig{
		Host:        cfg.Ollama.Host,
		Model:       cfg.Ollama.Model,
		Temperature: cfg.Ollama.Temperature,
	})

	// Init service
	narrativeService := narrative.NewNarrativeService(ollamaRepo, narrativeCache, narrative.Config{
		Model:          cfg.Ollama.Model,
		PerCallTimeout: cfg.Ollama.RequestTimeout,
		MaxConcurrency: cfg.Ollama.MaxConcurrency,
	})
	recommendService := recommend.NewRecommendService(catalogService, narrativeService, recommend.DefaultConfig())

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	shoeHandler := rest.NewShoeHandler(catalogService, narrativeService)
	healthHandler := rest.NewHealthHandler(cfg.Ollama.Host, cfg.Ollama.Model)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	router.SetHealthRoutes(e, healthHandler)
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recommendHandler)
	router.SetCatalogRoutes(api, catalogHandler)
	router.SetShoeRoutes(api, shoeHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
