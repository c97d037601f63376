package router

import (
	"github.com/gin-gonic/gin"

	"creditwatch/internal/config"
	"creditwatch/internal/domain"
	"creditwatch/internal/handler"
	"creditwatch/internal/middleware"
	"creditwatch/internal/service"
)

// Setup configures the Gin engine with all routes and middleware. Routes live
// under /api, matching the path the dashboard frontend calls.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	clientH *handler.ClientHandler,
	invoiceH *handler.InvoiceHandler,
	paymentH *handler.PaymentHandler,
	dashboardH *handler.DashboardHandler,
	reportH *handler.ReportHandler,
	reminderH *handler.ReminderHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/login", middleware.LoginRateLimit(cfg.RateLimit.LoginPerMinute), authH.Login)

	// Protected routes - require valid JWT
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.POST("/auth/register", middleware.RequireRole(domain.RoleAdmin), authH.Register)

	clients := protected.Group("/clients")
	clients.GET("", clientH.List)
	clients.POST("", clientH.Create)
	clients.GET("/:id", clientH.Get)
	clients.PUT("/:id", clientH.Update)
	clients.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), clientH.Delete)
	clients.POST("/:id/reminders", reminderH.Compose)
	clients.POST("/:id/reminders/send", reminderH.Send)

	invoices := protected.Group("/invoices")
	invoices.GET("", invoiceH.List)
	invoices.POST("", invoiceH.Create)
	invoices.POST("/import", invoiceH.Import)
	invoices.GET("/:id", invoiceH.Get)
	invoices.POST("/:id/mark-paid", paymentH.MarkPaid)
	invoices.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), invoiceH.Delete)

	payments := protected.Group("/payments")
	payments.GET("", paymentH.List)
	payments.POST("", paymentH.Record)
	payments.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), paymentH.Delete)

	protected.GET("/dashboard", dashboardH.Get)

	reports := protected.Group("/reports")
	reports.GET("/outstanding", reportH.Outstanding)
	reports.GET("/overdue", reportH.Overdue)
	reports.GET("/payments", reportH.Payments)
	reports.GET("/export", reportH.Export)

	return r
}
