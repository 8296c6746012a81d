package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"mainthub/docs"
	"mainthub/internal/caching"
	"mainthub/internal/common"
	"mainthub/internal/config"
	"mainthub/internal/handlers"
	"mainthub/internal/jobs"
	"mainthub/internal/jobs/background"
	"mainthub/internal/logging"
	"mainthub/internal/middleware"
	"mainthub/internal/repositories"
	"mainthub/internal/services"
	"mainthub/pkg/database"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("mainthub exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database.URL, database.PoolOptions{
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime.Duration,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer database.ClosePool(pool)

	// Redis and MinIO are optional; a nil service disables caching or archiving.
	var cacheSvc caching.CacheService
	if cfg.Redis.Addr != "" {
		cacheSvc = caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		// Snapshots written by an earlier build may not match the current models.
		if err := cacheSvc.InvalidateAllCache(ctx); err != nil {
			slog.Warn("failed to clear list cache", "error", err)
		}
	}

	var archive services.ImportArchive
	if cfg.Minio.Endpoint != "" {
		archive, err = services.NewMinioImportArchive(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			return fmt.Errorf("initialize import archive: %w", err)
		}
		if err := archive.EnsureBucketExists(ctx); err != nil {
			return fmt.Errorf("initialize import archive: %w", err)
		}
	}

	// Create repositories
	locationRepo := repositories.NewLocationRepository(pool)
	assetRepo := repositories.NewAssetRepository(pool)
	providerRepo := repositories.NewServiceProviderRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	requestRepo := repositories.NewServiceRequestRepository(pool)
	inventoryRepo := repositories.NewInventoryItemRepository(pool)
	scheduleRepo := repositories.NewServiceScheduleRepository(pool)
	requisitionRepo := repositories.NewRequisitionRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)

	ttl := cfg.Redis.ListTTL.Duration

	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Recover())
	e.Use(common.RequestIDMiddleware())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.APIVersionResolver())

	v1 := versionMiddleware.VersionRoute(e, "v1")
	mount(v1, "/locations", services.NewEntityService(locationRepo, cacheSvc, archive, ttl))
	mount(v1, "/assets", services.NewEntityService(assetRepo, cacheSvc, archive, ttl))
	mount(v1, "/service-providers", services.NewEntityService(providerRepo, cacheSvc, archive, ttl))
	mount(v1, "/suppliers", services.NewEntityService(supplierRepo, cacheSvc, archive, ttl))
	mount(v1, "/service-requests", services.NewEntityService(requestRepo, cacheSvc, archive, ttl))
	mount(v1, "/inventory", services.NewEntityService(inventoryRepo, cacheSvc, archive, ttl))
	mount(v1, "/service-schedules", services.NewEntityService(scheduleRepo, cacheSvc, archive, ttl))
	mount(v1, "/requisitions", services.NewEntityService(requisitionRepo, cacheSvc, archive, ttl))
	// Categories are maintained in the store directly, so their list is not cached.
	categories := services.NewEntityService(categoryRepo, nil, nil, 0)
	handlers.NewEntityHandlers(categories).RegisterReadOnly(v1.Group("/categories"))

	var jobStatus handlers.JobStatusReporter
	if cfg.Jobs.Enabled {
		scheduler, err := background.NewJobScheduler(
			background.CheckFunc{
				JobName:  "low-stock",
				Every:    cfg.Jobs.LowStockInterval.Duration,
				Function: jobs.NewInventoryAlertService(inventoryRepo).ScheduledLowStockCheck,
			},
			background.CheckFunc{
				JobName:  "due-maintenance",
				Every:    cfg.Jobs.DueMaintenanceInterval.Duration,
				Function: jobs.NewMaintenanceAlertService(scheduleRepo).ScheduledDueCheck,
			},
		)
		if err != nil {
			return fmt.Errorf("initialize job scheduler: %w", err)
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				slog.Error("failed to stop job scheduler", "error", err)
			}
		}()
		jobStatus = scheduler
	}

	// Health endpoints
	var cachePinger handlers.Pinger
	if cacheSvc != nil {
		cachePinger = cacheSvc
	}
	health := handlers.NewHealthHandlers(pool, cachePinger, jobStatus, version)
	e.GET("/health", health.HealthCheck)
	e.GET("/health/ready", health.ReadinessCheck)

	if cfg.Server.EnableSwagger {
		docs.SwaggerInfo.Version = version
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("mainthub server starting", "version", version, "addr", addr,
			"cache", cacheSvc != nil, "archive", archive != nil, "jobs", cfg.Jobs.Enabled)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func mount[T any](v1 *echo.Group, prefix string, service services.EntityService[T]) {
	handlers.NewEntityHandlers(service).Register(v1.Group(prefix))
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.ShutdownTimeout.Duration > 0 {
		return cfg.Server.ShutdownTimeout.Duration
	}
	return 10 * time.Second
}
