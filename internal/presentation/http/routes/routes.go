package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/config"
	"github.com/sangkips/booth-pos/internal/presentation/http/handler"
	"github.com/sangkips/booth-pos/internal/presentation/http/middleware"
	"github.com/sirupsen/logrus"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Bill     *handler.BillHandler
	QR       *handler.QRHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
// The returned limiter must be closed on shutdown.
func Setup(h *Handlers, deps *Deps) (*gin.Engine, *middleware.ClientRateLimiter) {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	requestsPerSecond := 0.0
	if deps.Cfg.RateLimit.Duration > 0 {
		requestsPerSecond = float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration)
	}
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: requestsPerSecond,
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		registerProductRoutes(v1, h)
		registerOrderRoutes(v1, h)
		registerBillRoutes(v1, h)
		registerQRRoutes(v1, h)
		registerSettingsRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router, rateLimiter
}

func registerProductRoutes(rg *gin.RouterGroup, h *Handlers) {
	products := rg.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/export", h.Product.Export)
		products.PUT("/:name", h.Product.Update)
		products.DELETE("/:name", h.Product.Delete)
	}
}

func registerOrderRoutes(rg *gin.RouterGroup, h *Handlers) {
	orders := rg.Group("/orders")
	{
		orders.POST("/preview", h.Order.Preview)
		orders.POST("/checkout", h.Order.Checkout)
	}
}

func registerBillRoutes(rg *gin.RouterGroup, h *Handlers) {
	bills := rg.Group("/bills")
	{
		bills.POST("", h.Bill.Create)
		bills.GET("/incomplete", h.Bill.ListIncomplete)
		bills.GET("/incomplete/:id", h.Bill.GetIncomplete)
		bills.POST("/incomplete", h.Bill.MarkIncomplete)
		bills.POST("/paid", h.Bill.MarkPaid)
		bills.POST("/print", h.Printer.PrintBill)
	}
}

func registerQRRoutes(rg *gin.RouterGroup, h *Handlers) {
	qr := rg.Group("/qr")
	{
		qr.POST("", h.QR.Request)
		qr.POST("/bulk", h.QR.Bulk)
		qr.GET("/cache", h.QR.List)
		qr.DELETE("/cache", h.QR.Clear)
		qr.DELETE("/cache/index/:index", h.QR.DeleteIndex)
		qr.DELETE("/cache/:amount", h.QR.DeleteAmount)
	}
}

func registerSettingsRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/settings/bank", h.Settings.GetBankAccount)
	rg.PUT("/settings/bank", h.Settings.UpdateBankAccount)
	rg.GET("/banks", h.Settings.ListBanks)
}

func registerPrinterRoutes(rg *gin.RouterGroup, h *Handlers) {
	printer := rg.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}
