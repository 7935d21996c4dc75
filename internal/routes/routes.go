package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/config"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/middleware"
	"invoice-dashboard-backend/internal/repository"
	authsvc "invoice-dashboard-backend/internal/services/auth"
	"invoice-dashboard-backend/internal/services/dashboard"
	invoicesvc "invoice-dashboard-backend/internal/services/invoices"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, views cache.ViewCache, authCfg config.AuthConfig, logger *zap.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	invoiceService := invoicesvc.NewService(invoiceRepo, views, logger)
	dashboardService := dashboard.NewService(invoiceRepo, customerRepo, revenueRepo, logger)
	authService := authsvc.NewService(userRepo, authCfg.Secret, authCfg.Expiry, logger)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, invoiceRepo)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	authHandler := handler.NewAuthHandler(authService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/login", authHandler.Login)

	// Everything below assumes an authenticated operator.
	protected := api.Group("", middleware.RequireAuth(authService))

	invoices := protected.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	customers := protected.Group("/customers")
	{
		customers.GET("", customerHandler.List)
		customers.GET("/filtered", customerHandler.Filtered)
	}

	dash := protected.Group("/dashboard")
	{
		dash.GET("/cards", dashboardHandler.Cards)
		dash.GET("/latest-invoices", dashboardHandler.LatestInvoices)
		dash.GET("/revenue", dashboardHandler.Revenue)
	}
}
