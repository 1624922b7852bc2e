package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pennywise/internal/config"
	"pennywise/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	budgetHandler *handler.BudgetHandler,
	categoryHandler *handler.CategoryHandler,
	transactionHandler *handler.TransactionHandler,
	summaryHandler *handler.SummaryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Auth
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Users
	api.GET("/users/:email", userHandler.GetUserByEmail)
	api.PUT("/users/create", userHandler.CreateUser)
	api.PATCH("/users/password", userHandler.UpdatePassword)
	api.DELETE("/users/delete", userHandler.DeleteUser)

	// Budget
	api.GET("/budget/:userId", budgetHandler.GetBudget)
	api.PUT("/budget/create", budgetHandler.CreateBudget)
	api.PATCH("/budget/update", budgetHandler.UpdateBudget)
	api.DELETE("/budget/delete", budgetHandler.DeleteBudget)

	// Categories
	api.GET("/categories/:budgetId", categoryHandler.ListCategories)
	api.PUT("/categories/create", categoryHandler.CreateCategory)
	api.PATCH("/categories/update", categoryHandler.UpdateCategory)
	api.DELETE("/categories/delete", categoryHandler.DeleteCategory)

	// Transactions
	api.GET("/transactions/:budgetId", transactionHandler.ListTransactions)
	api.PUT("/transactions/create", transactionHandler.CreateTransaction)
	api.PATCH("/transactions/update", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/delete", transactionHandler.DeleteTransaction)

	// Summaries
	api.GET("/budget-remaining/:budgetId", summaryHandler.BudgetRemaining)
	api.GET("/budget-spent/:budgetId", summaryHandler.BudgetSpent)
	api.GET("/budget-total/:budgetId", summaryHandler.BudgetTotal)
	api.GET("/category-remaining/:categoryId", summaryHandler.CategoryRemaining)
	api.GET("/category-spent/:categoryId", summaryHandler.CategorySpent)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		return c.JSON(http.StatusOK, echo.Map{"token_claims": claims})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
