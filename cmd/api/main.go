package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ledger-api/internal/application/service"
	"github.com/sangkips/ledger-api/internal/config"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/infrastructure/database"
	"github.com/sangkips/ledger-api/internal/infrastructure/repository"
	"github.com/sangkips/ledger-api/internal/logger"
	"github.com/sangkips/ledger-api/internal/presentation/http/handler"
	"github.com/sangkips/ledger-api/internal/presentation/http/routes"
	"github.com/sangkips/ledger-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.App.Env, cfg.App.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	if err := database.SeedDefaultData(db, cfg.Admin, log); err != nil {
		log.Warn("failed to seed default data", zap.Error(err))
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	objectRepo := repository.NewExpenseObjectRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager, log)
	customerService := service.NewCustomerService(customerRepo)
	projectService := service.NewProjectService(projectRepo, customerRepo)
	quoteService := service.NewQuoteService(quoteRepo, projectRepo, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, quoteRepo, projectRepo, log)
	expenseService := service.NewExpenseService(expenseRepo, objectRepo, departmentRepo, employeeRepo, projectRepo, log)
	objectService := service.NewExpenseObjectService(objectRepo)
	departmentService := service.NewDepartmentService(departmentRepo)
	employeeService := service.NewEmployeeService(employeeRepo, departmentRepo, userRepo)
	reportService := service.NewReportService(service.ReportRepositories{
		Projects:    projectRepo,
		Quotes:      quoteRepo,
		Invoices:    invoiceRepo,
		Expenses:    expenseRepo,
		Objects:     objectRepo,
		Departments: departmentRepo,
		Employees:   employeeRepo,
	}, cfg.Report.VarianceTolerancePct, log)

	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Customer:     handler.NewCustomerHandler(customerService),
		Project:      handler.NewProjectHandler(projectService),
		Quote:        handler.NewQuoteHandler(quoteService),
		Invoice:      handler.NewInvoiceHandler(invoiceService),
		Planned:      handler.NewExpenseHandler(expenseService, enum.ExpenseKindPlanned),
		Actual:       handler.NewExpenseHandler(expenseService, enum.ExpenseKindActual),
		Organisation: handler.NewOrganisationHandler(objectService, departmentService, employeeService),
		Report:       handler.NewReportHandler(reportService, service.NewExportService()),
	}

	rateLimiter := routes.NewRateLimiter(&cfg.RateLimit)
	stopCleanup := make(chan struct{})
	go rateLimiter.Run(5*time.Minute, stopCleanup)

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:  jwtManager,
		Cfg:         cfg,
		Logger:      log,
		RateLimiter: rateLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", cfg.App.Port),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	close(stopCleanup)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
