package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elhoucineqara/saascompare/internal/config"
	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/handler"
	"github.com/elhoucineqara/saascompare/internal/logger"
	"github.com/elhoucineqara/saascompare/internal/metrics"
	"github.com/elhoucineqara/saascompare/internal/middleware"
	"github.com/elhoucineqara/saascompare/internal/render"
	"github.com/elhoucineqara/saascompare/internal/repository"
	"github.com/elhoucineqara/saascompare/internal/service"
	"github.com/elhoucineqara/saascompare/internal/validator"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	// Connect to the store
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := repository.Open(connectCtx, cfg)
	cancelConnect()
	if err != nil {
		logger.Fatal("Failed to connect to store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", err.Error()))
	}
	defer store.Close()
	logger.Info("Connected to store", slog.String("driver", store.Driver))

	// Start database pool metrics collector
	if store.Pool != nil {
		poolStatsCollector := metrics.NewPoolStatsCollector(store.Pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()
	}

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	searchService := service.NewSearchService(store.Tools, store.Categories, store.Comparisons, service.SearchLimits{
		Tools:       cfg.SearchToolLimit,
		Categories:  cfg.SearchCategoryLimit,
		Comparisons: cfg.SearchComparisonLimit,
	})
	toolService := service.NewToolService(store.Tools, store.Categories, store.Comparisons, v)
	categoryService := service.NewCategoryService(store.Categories, store.Tools, v)
	comparisonService := service.NewComparisonService(store.Comparisons, store.Tools, v)
	blogService := service.NewBlogService(store.BlogPosts, store.Users, v)
	authService := service.NewAuthService(store.Users, store.Sessions, v, cfg.SessionTTL, cfg.BcryptCost)

	sweeper := service.NewSessionSweeper(store.Sessions)
	sweeper.Start(cfg.SessionSweepInterval)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchService)
	catalogHandler := handler.NewCatalogHandler(toolService, categoryService, comparisonService, blogService, render.NewMarkdown())
	authHandler := handler.NewAuthHandler(authService, cfg.SessionCookieSecure)
	adminHandler := handler.NewAdminHandler(toolService, categoryService, comparisonService, blogService)
	healthHandler := handler.NewHealthHandler(store, store.Driver, version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())
	router.Use(middleware.Authenticate(authService))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Typeahead search, also reachable at the page-level path
	router.GET("/search", searchHandler.Search)

	api := router.Group("/api")
	{
		api.GET("/search", searchHandler.Search)

		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/categories/:slug", catalogHandler.GetCategory)
		api.GET("/tools", catalogHandler.ListTools)
		api.GET("/tools/:slug", catalogHandler.GetTool)
		api.GET("/compare/:slug", catalogHandler.Compare)
		api.GET("/blog", catalogHandler.ListBlogPosts)
		api.GET("/blog/:slug", catalogHandler.GetBlogPost)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireUser(), authHandler.Me)
		}

		// Admin routes
		admin := api.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
		{
			admin.GET("/tools", adminHandler.ListTools)
			admin.POST("/tools", adminHandler.CreateTool)
			admin.GET("/tools/:id", adminHandler.GetTool)
			admin.PUT("/tools/:id", adminHandler.UpdateTool)
			admin.DELETE("/tools/:id", adminHandler.DeleteTool)

			admin.GET("/categories", adminHandler.ListCategories)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.GET("/categories/:id", adminHandler.GetCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/comparisons", adminHandler.ListComparisons)
			admin.POST("/comparisons", adminHandler.CreateComparison)
			admin.GET("/comparisons/:id", adminHandler.GetComparison)
			admin.PUT("/comparisons/:id", adminHandler.UpdateComparison)
			admin.DELETE("/comparisons/:id", adminHandler.DeleteComparison)

			admin.GET("/blog", adminHandler.ListBlogPosts)
			admin.POST("/blog", adminHandler.CreateBlogPost)
			admin.GET("/blog/:id", adminHandler.GetBlogPost)
			admin.PUT("/blog/:id", adminHandler.UpdateBlogPost)
			admin.PATCH("/blog/:id", adminHandler.UpdateBlogPost)
			admin.DELETE("/blog/:id", adminHandler.DeleteBlogPost)
		}
	}

	var h http.Handler = router
	if cfg.GzipEnabled {
		h = gzhttp.GzipHandler(router)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Stopping session sweeper")
	sweeper.Stop()

	if store.Pool != nil {
		metrics.LogPoolStats(ctx, store.Pool)
	}

	logger.Info("Server exited")
}
