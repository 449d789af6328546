package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	attachmentapp "github.com/rentdesk/backend/internal/application/attachment"
	financeapp "github.com/rentdesk/backend/internal/application/finance"
	propertyapp "github.com/rentdesk/backend/internal/application/property"
	"github.com/rentdesk/backend/internal/infrastructure/config"
	"github.com/rentdesk/backend/internal/infrastructure/logger"
	"github.com/rentdesk/backend/internal/infrastructure/persistence"
	"github.com/rentdesk/backend/internal/infrastructure/storage"
	"github.com/rentdesk/backend/internal/interfaces/http/handler"
	"github.com/rentdesk/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	objectStorage, thumbnails := buildStorage(cfg, log)

	// Repositories
	receiptRepo := persistence.NewGormReceiptRepository(db.DB)
	photoRepo := persistence.NewGormPhotoRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	categoryRepo := persistence.NewGormExpenseCategoryRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	workOrderRepo := persistence.NewGormWorkOrderRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)

	// Application services
	serviceCfg := attachmentapp.ServiceConfig{
		UploadURLExpiry:   cfg.Upload.UploadURLExpiry,
		DownloadURLExpiry: cfg.Upload.DownloadURLExpiry,
		MaxPhotosPerOwner: cfg.Upload.MaxPhotosPerOwner,
	}

	uploadService := attachmentapp.NewUploadService(receiptRepo, photoRepo, propertyRepo, workOrderRepo, objectStorage, thumbnails)
	uploadService.SetConfig(serviceCfg)
	receiptService := attachmentapp.NewReceiptService(receiptRepo, objectStorage)
	receiptService.SetConfig(serviceCfg)
	linkService := attachmentapp.NewReceiptLinkService(receiptRepo, expenseRepo, categoryRepo, propertyRepo, workOrderRepo, objectStorage)
	linkService.SetConfig(serviceCfg)
	photoService := attachmentapp.NewPhotoService(photoRepo, propertyRepo, workOrderRepo, objectStorage, thumbnails)
	photoService.SetConfig(serviceCfg)

	expenseService := financeapp.NewExpenseService(expenseRepo, categoryRepo, propertyRepo, workOrderRepo)
	importService := financeapp.NewExpenseImportService(expenseRepo, categoryRepo, propertyRepo, workOrderRepo)
	categoryService := financeapp.NewCategoryService(categoryRepo)
	propertyService := propertyapp.NewPropertyService(propertyRepo, workOrderRepo)
	workOrderService := propertyapp.NewWorkOrderService(workOrderRepo, propertyRepo, vendorRepo)
	vendorService := propertyapp.NewVendorService(vendorRepo)

	engine := router.Setup(cfg, log, router.Handlers{
		System:    handler.NewSystemHandler(db.DB, version),
		Upload:    handler.NewUploadHandler(uploadService),
		Receipt:   handler.NewReceiptHandler(receiptService, linkService),
		Photo:     handler.NewPhotoHandler(photoService),
		Expense:   handler.NewExpenseHandler(expenseService, importService),
		Category:  handler.NewCategoryHandler(categoryService),
		Property:  handler.NewPropertyHandler(propertyService),
		WorkOrder: handler.NewWorkOrderHandler(workOrderService),
		Vendor:    handler.NewVendorHandler(vendorService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Starting server",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// buildStorage wires the S3 client and thumbnailer. Outside production a
// missing access key falls back to the in-memory stub so the API can run
// without an object store.
func buildStorage(cfg *config.Config, log *zap.Logger) (attachmentapp.ObjectStorageService, attachmentapp.ThumbnailGenerator) {
	if cfg.Storage.AccessKey == "" && cfg.App.Env != "production" {
		log.Warn("No storage credentials configured, using in-memory stub storage")
		return storage.NewStubObjectStorage(), &storage.StubThumbnailGenerator{}
	}

	s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s3Storage.EnsureBucket(ctx); err != nil {
		log.Fatal("Failed to ensure storage bucket", zap.Error(err))
	}

	thumbnails := storage.NewS3ThumbnailGenerator(s3Storage, cfg.Upload.ThumbnailMaxPixels, log)
	return s3Storage, thumbnails
}
