package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sismin/backoffice-api/internal/api/handler"
	"github.com/sismin/backoffice-api/internal/api/middleware"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/rotation"
	"github.com/sismin/backoffice-api/internal/core/service"
	mongorepo "github.com/sismin/backoffice-api/internal/infrastructure/db/mongo"
)

// RouterConfig carries the settings NewRouter needs beyond its connections.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Rotation  rotation.Config
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	concessionRepo := mongorepo.NewConcessionRepository(db)
	employeeRepo := mongorepo.NewEmployeeRepository(db)
	expenseRepo := mongorepo.NewExpenseRepository(db)
	payrollRepo := mongorepo.NewPayrollRepository(db)
	documentRepo := mongorepo.NewDocumentRepository(db)
	notificationRepo := mongorepo.NewNotificationRepository(db)

	// --- Services ---
	scheduler := rotation.NewScheduler(cfg.Rotation, userRepo)
	authService := service.NewAuthService(userRepo, concessionRepo, cfg.JWTSecret, cfg.TokenTTL)
	concessionService := service.NewConcessionService(concessionRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	expenseService := service.NewExpenseService(expenseRepo, log)
	payrollService := service.NewPayrollService(payrollRepo, employeeRepo, scheduler, log)
	documentService := service.NewDocumentService(documentRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, log)
	dashboardService := service.NewDashboardService(employeeRepo, expenseRepo, payrollRepo, notificationRepo, scheduler, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	concessionHandler := handler.NewConcessionHandler(concessionService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	payrollHandler := handler.NewPayrollHandler(payrollService)
	documentHandler := handler.NewDocumentHandler(documentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret, userRepo))
	ownerOnly := middleware.RBAC(domain.RoleOwner)
	publisherOnly := middleware.RBAC(domain.RoleOwner, domain.RoleAdmin)

	v1.GET("/me", authHandler.Me)
	v1.POST("/users/:id/concessions", authHandler.AssignConcession, ownerOnly)

	v1.GET("/concessions", concessionHandler.List)
	v1.POST("/concessions", concessionHandler.Create, ownerOnly)
	v1.PUT("/concessions/:id", concessionHandler.Update, ownerOnly)
	v1.DELETE("/concessions/:id", concessionHandler.Deactivate, ownerOnly)

	v1.GET("/employees", employeeHandler.List)
	v1.POST("/employees", employeeHandler.Create)
	v1.GET("/employees/:id", employeeHandler.Get)
	v1.PUT("/employees/:id", employeeHandler.Update)
	v1.DELETE("/employees/:id", employeeHandler.Delete)

	v1.GET("/expenses", expenseHandler.List)
	v1.POST("/expenses", expenseHandler.Create)
	v1.GET("/expenses/:id", expenseHandler.Get)
	v1.PUT("/expenses/:id", expenseHandler.Update)
	v1.DELETE("/expenses/:id", expenseHandler.Delete)

	v1.GET("/payroll", payrollHandler.List)
	v1.POST("/payroll", payrollHandler.Create)
	v1.GET("/payroll/current-payer", payrollHandler.CurrentPayer)
	v1.GET("/payroll/:id", payrollHandler.Get)
	v1.PUT("/payroll/:id", payrollHandler.Update)
	v1.DELETE("/payroll/:id", payrollHandler.Delete)

	v1.GET("/documents", documentHandler.List)
	v1.POST("/documents", documentHandler.Create)
	v1.GET("/documents/:id", documentHandler.Get)
	v1.PUT("/documents/:id", documentHandler.Update)
	v1.DELETE("/documents/:id", documentHandler.Delete)

	v1.GET("/notifications", notificationHandler.List)
	v1.POST("/notifications", notificationHandler.Create, publisherOnly)
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead)
	v1.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	v1.GET("/dashboard", dashboardHandler.Overview)

	return e
}
