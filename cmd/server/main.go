package main

import (
	"log"
	"net/http"

	_ "pennywise/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pennywise/internal/auth"
	"pennywise/internal/cache"
	"pennywise/internal/config"
	"pennywise/internal/db"
	"pennywise/internal/handler"
	"pennywise/internal/repository"
	"pennywise/internal/router"
	"pennywise/internal/service"
)

// @title Pennywise Budget API
// @version 1.0
// @description Personal budgeting API: users, budgets, spending categories and transactions.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Schema must be in place before any request is served.
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	budgetRepo := repository.NewBudgetRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	transactionRepo := repository.NewTransactionRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	budgetService := service.NewBudgetService(budgetRepo, userRepo)
	categoryService := service.NewCategoryService(categoryRepo, budgetRepo)
	transactionService := service.NewTransactionService(transactionRepo, categoryRepo, budgetRepo)
	summaryService := service.NewSummaryService(budgetRepo, categoryRepo, transactionRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	// Register routes
	router.Register(
		e,
		cfg,
		userHandler,
		authHandler,
		budgetHandler,
		categoryHandler,
		transactionHandler,
		summaryHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
