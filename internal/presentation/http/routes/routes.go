package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ledger-api/internal/config"
	"github.com/sangkips/ledger-api/internal/infrastructure/database"
	"github.com/sangkips/ledger-api/internal/presentation/http/handler"
	"github.com/sangkips/ledger-api/internal/presentation/http/middleware"
	"github.com/sangkips/ledger-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Customer     *handler.CustomerHandler
	Project      *handler.ProjectHandler
	Quote        *handler.QuoteHandler
	Invoice      *handler.InvoiceHandler
	Planned      *handler.ExpenseHandler
	Actual       *handler.ExpenseHandler
	Organisation *handler.OrganisationHandler
	Report       *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager  *utils.JWTManager
	Cfg         *config.Config
	Logger      *zap.Logger
	RateLimiter *middleware.UserRateLimiter
}

// NewRateLimiter builds the per-user limiter from configuration
func NewRateLimiter(cfg *config.RateLimitConfig) *middleware.UserRateLimiter {
	return middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
		Requests: cfg.Requests,
		Window:   time.Duration(cfg.Duration) * time.Second,
		EntryTTL: 10 * time.Minute,
	})
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	rateLimiter := deps.RateLimiter
	if rateLimiter == nil {
		rateLimiter = NewRateLimiter(&deps.Cfg.RateLimit)
	}

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(rateLimiter.Middleware())
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	registerCustomerRoutes(protected, h)
	registerProjectRoutes(protected, h)
	registerDocumentRoutes(protected, h)
	registerExpenseRoutes(protected, h)
	registerOrganisationRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission(database.PermManageCustomers))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerProjectRoutes(protected *gin.RouterGroup, h *Handlers) {
	manage := middleware.RequirePermission(database.PermManageProjects)
	quotes := middleware.RequirePermission(database.PermManageQuotes)
	invoices := middleware.RequirePermission(database.PermManageInvoices)
	expenses := middleware.RequirePermission(database.PermManageExpenses)
	reports := middleware.RequirePermission(database.PermViewReports)

	projects := protected.Group("/projects")
	{
		projects.GET("", manage, h.Project.List)
		projects.POST("", manage, h.Project.Create)
		projects.GET("/:id", manage, h.Project.Get)
		projects.PUT("/:id", manage, h.Project.Update)
		projects.DELETE("/:id", manage, h.Project.Delete)

		projects.GET("/:id/quotes", quotes, h.Quote.List)
		projects.POST("/:id/quotes", quotes, h.Quote.Create)
		projects.GET("/:id/invoices", invoices, h.Invoice.List)
		projects.POST("/:id/invoices", invoices, h.Invoice.Create)
		projects.GET("/:id/expense-quotes", expenses, h.Planned.List)
		projects.POST("/:id/expense-quotes", expenses, h.Planned.Create)
		projects.GET("/:id/expenses", expenses, h.Actual.List)
		projects.POST("/:id/expenses", expenses, h.Actual.Create)

		projects.GET("/:id/report", reports, h.Report.Get)
		projects.GET("/:id/report/export", reports, h.Report.Export)
	}
}

func registerDocumentRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotes := protected.Group("/quotes")
	quotes.Use(middleware.RequirePermission(database.PermManageQuotes))
	{
		quotes.GET("/:id", h.Quote.Get)
		quotes.PUT("/:id", h.Quote.Update)
		quotes.PUT("/:id/status", h.Quote.UpdateStatus)
		quotes.DELETE("/:id", h.Quote.Delete)
	}

	invoices := protected.Group("/invoices")
	invoices.Use(middleware.RequirePermission(database.PermManageInvoices))
	{
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.PUT("/:id/status", h.Invoice.UpdateStatus)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}
}

func registerExpenseRoutes(protected *gin.RouterGroup, h *Handlers) {
	manage := middleware.RequirePermission(database.PermManageExpenses)
	approve := middleware.RequirePermission(database.PermApproveExpenses)

	for prefix, eh := range map[string]*handler.ExpenseHandler{"/expense-quotes": h.Planned, "/expenses": h.Actual} {
		group := protected.Group(prefix)
		group.GET("/:id", manage, eh.Get)
		group.PUT("/:id", manage, eh.Update)
		group.DELETE("/:id", manage, eh.Delete)
		group.POST("/:id/approve", approve, eh.Approve)
		group.POST("/:id/reject", approve, eh.Reject)
	}
}

func registerOrganisationRoutes(protected *gin.RouterGroup, h *Handlers) {
	objects := middleware.RequirePermission(database.PermManageExpenseObjects)
	org := middleware.RequirePermission(database.PermManageOrganisation)

	protected.GET("/expense-objects", h.Organisation.ListExpenseObjects)
	protected.POST("/expense-objects", objects, h.Organisation.CreateExpenseObject)
	protected.PUT("/expense-objects/:id", objects, h.Organisation.UpdateExpenseObject)
	protected.DELETE("/expense-objects/:id", objects, h.Organisation.DeleteExpenseObject)

	protected.GET("/departments", h.Organisation.ListDepartments)
	protected.POST("/departments", org, h.Organisation.CreateDepartment)
	protected.PUT("/departments/:id", org, h.Organisation.UpdateDepartment)
	protected.DELETE("/departments/:id", org, h.Organisation.DeleteDepartment)

	protected.GET("/employees", h.Organisation.ListEmployees)
	protected.POST("/employees", org, h.Organisation.CreateEmployee)
}
