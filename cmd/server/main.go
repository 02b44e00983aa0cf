// @title           Site Log Backend API
// @version         1.0.0
// @description     Daily log API for construction projects: notes and execution reports against to-dos, photo and video evidence, and a per-day feed with missing-report counts.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"sitelog-backend/docs"
	"sitelog-backend/internal/config"
	"sitelog-backend/internal/database"
	"sitelog-backend/internal/handlers"
	"sitelog-backend/internal/logger"
	"sitelog-backend/internal/scheduler"
	"sitelog-backend/internal/services"
	"sitelog-backend/internal/supabase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		Output:      cfg.LogOutput,
		File:        cfg.LogFile,
		Development: cfg.Environment != "production",
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to initialize database client", zap.Error(err))
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(dbClient.DB(), zlog)
	if err != nil {
		zlog.Fatal("failed to initialize migrator", zap.Error(err))
	}
	if err := migrator.Run(context.Background()); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	zlog.Info("migrations completed successfully")

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize Supabase client", zap.Error(err))
	}
	storageClient, err := supabase.NewStorageClient(supabaseClient, cfg.SupabaseStorageBucket)
	if err != nil {
		zlog.Fatal("failed to initialize storage client", zap.Error(err))
	}

	mediaStore := services.NewMediaStore(storageClient, services.MediaStoreOptions{
		Timeout:     cfg.UploadTimeout,
		MaxAttempts: cfg.UploadMaxAttempts,
		Concurrency: cfg.UploadConcurrency,
	}, zlog.Named("media"))
	feedRepo := services.NewFeedRepository(dbClient, mediaStore, cfg.Location(), zlog.Named("feed"))
	aggregator := services.NewDailyAggregator(feedRepo, zlog.Named("aggregator"))
	noteWorkflow := services.NewNoteSubmissionWorkflow(dbClient, mediaStore, zlog.Named("notes"))
	reportWorkflow := services.NewExecutionReportWorkflow(dbClient, mediaStore, cfg.ResetReviewOnResubmit(), zlog.Named("reports"))

	jobs, err := scheduler.NewManager(cfg.Location(), zlog.Named("scheduler"))
	if err != nil {
		zlog.Fatal("failed to initialize scheduler", zap.Error(err))
	}
	sweep := scheduler.NewMissingReportJob(dbClient, aggregator, cfg.Location(), zlog.Named("sweep"))
	if err := jobs.RegisterMissingReportSweep(sweep, cfg.MissingReportSweepCron); err != nil {
		zlog.Fatal("failed to register missing report sweep", zap.Error(err))
	}
	jobs.Start()
	defer jobs.Stop()

	router := handlers.NewRouter(handlers.RouterDeps{
		Config:     cfg,
		Logger:     zlog.Named("http"),
		DB:         dbClient,
		Feed:       feedRepo,
		Aggregator: aggregator,
		Notes:      noteWorkflow,
		Reports:    reportWorkflow,
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}
}
