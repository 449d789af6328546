package router

import (
	"time"

	"github.com/rentdesk/backend/internal/infrastructure/config"
	"github.com/rentdesk/backend/internal/infrastructure/logger"
	"github.com/rentdesk/backend/internal/interfaces/http/handler"
	"github.com/rentdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles every handler the API serves
type Handlers struct {
	System    *handler.SystemHandler
	Upload    *handler.UploadHandler
	Receipt   *handler.ReceiptHandler
	Photo     *handler.PhotoHandler
	Expense   *handler.ExpenseHandler
	Category  *handler.CategoryHandler
	Property  *handler.PropertyHandler
	WorkOrder *handler.WorkOrderHandler
	Vendor    *handler.VendorHandler
}

// Setup builds a gin engine with the full middleware chain and all API
// routes. The health endpoint sits outside the account-scoped groups so load
// balancers can check it without credentials.
func Setup(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	middleware.SetupValidator()

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsCfg),
		middleware.Secure(),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.AccountMiddleware(),
	)

	if cfg.HTTP.RateLimitPerMinute > 0 {
		engine.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.HTTP.RateLimitPerMinute, time.Minute)))
	}

	engine.GET("/health", h.System.Health)

	r := NewRouter(engine)

	system := NewDomainGroup("system", "/system")
	system.GET("/info", h.System.GetSystemInfo)

	uploads := NewDomainGroup("uploads", "/uploads")
	if cfg.HTTP.UploadRateLimitPerMinute > 0 {
		uploads.Use(middleware.UploadRateLimit(middleware.NewRateLimiter(cfg.HTTP.UploadRateLimitPerMinute, time.Minute)))
	}
	uploads.POST("/receipts", h.Upload.GenerateReceiptUploadURL).
		POST("/receipts/confirm", h.Upload.ConfirmReceiptUpload).
		POST("/photos", h.Upload.GeneratePhotoUploadURL).
		POST("/photos/confirm", h.Upload.ConfirmPhotoUpload)

	receipts := NewDomainGroup("receipts", "/receipts")
	receipts.GET("", h.Receipt.List).
		GET("/:id", h.Receipt.GetByID).
		DELETE("/:id", h.Receipt.Delete).
		POST("/:id/process", h.Receipt.Process)

	photos := NewDomainGroup("photos", "/photos")
	photos.GET("", h.Photo.ListByOwner).
		POST("/reorder", h.Photo.Reorder).
		GET("/:id", h.Photo.GetByID).
		POST("/:id/primary", h.Photo.SetPrimary).
		DELETE("/:id", h.Photo.Delete)

	expenses := NewDomainGroup("expenses", "/expenses")
	expenses.POST("", h.Expense.Create).
		GET("", h.Expense.List).
		POST("/import", h.Expense.Import).
		GET("/:id", h.Expense.GetByID).
		PUT("/:id", h.Expense.Update).
		DELETE("/:id", h.Expense.Delete).
		POST("/:id/receipt", h.Receipt.Link).
		DELETE("/:id/receipt", h.Receipt.Unlink)

	categories := NewDomainGroup("categories", "/categories")
	categories.POST("", h.Category.Create).
		GET("", h.Category.List).
		GET("/:id", h.Category.GetByID)

	properties := NewDomainGroup("properties", "/properties")
	properties.POST("", h.Property.Create).
		GET("", h.Property.List).
		GET("/:id", h.Property.GetByID).
		PUT("/:id", h.Property.Update).
		DELETE("/:id", h.Property.Delete)

	workOrders := NewDomainGroup("work-orders", "/work-orders")
	workOrders.POST("", h.WorkOrder.Create).
		GET("", h.WorkOrder.List).
		GET("/:id", h.WorkOrder.GetByID).
		PUT("/:id", h.WorkOrder.Update).
		POST("/:id/transition", h.WorkOrder.Transition).
		DELETE("/:id", h.WorkOrder.Delete)

	vendors := NewDomainGroup("vendors", "/vendors")
	vendors.POST("", h.Vendor.Create).
		GET("", h.Vendor.List).
		GET("/:id", h.Vendor.GetByID).
		PUT("/:id", h.Vendor.Update).
		DELETE("/:id", h.Vendor.Delete)

	r.Register(system).
		Register(uploads).
		Register(receipts).
		Register(photos).
		Register(expenses).
		Register(categories).
		Register(properties).
		Register(workOrders).
		Register(vendors)
	r.Setup()

	return engine
}
