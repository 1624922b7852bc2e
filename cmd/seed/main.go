package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"pennywise/internal/config"
	"pennywise/internal/db"
	"pennywise/internal/repository"
	"pennywise/internal/service"
)

const (
	demoEmail    = "demo@pennywise.local"
	demoPassword = "demo-password"
)

// demoCategories replace the zero-allocation defaults seeded with the budget.
var demoCategories = []struct {
	name   string
	amount string
}{
	{"Rent", "500"},
	{"Food", "200"},
	{"Transport", "80"},
	{"Fun", "60"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	budgetRepo := repository.NewBudgetRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	transactionRepo := repository.NewTransactionRepository(gormDB)

	userService := service.NewUserService(userRepo)
	budgetService := service.NewBudgetService(budgetRepo, userRepo)
	categoryService := service.NewCategoryService(categoryRepo, budgetRepo)
	transactionService := service.NewTransactionService(transactionRepo, categoryRepo, budgetRepo)

	ctx := context.Background()

	user, err := userService.Register(ctx, demoEmail, demoPassword)
	if err != nil {
		log.Fatalf("Failed to create demo user (already seeded?): %v", err)
	}
	log.Printf("Created demo user %s (id %d)", demoEmail, user.ID)

	budget, err := budgetService.Create(ctx, user.ID, decimal.NewFromInt(1000))
	if err != nil {
		log.Fatalf("Failed to create demo budget: %v", err)
	}
	log.Printf("Created demo budget (id %d)", budget.ID)

	// The budget comes with zero-allocation defaults; give the demo account
	// a populated set instead.
	defaults, err := categoryService.ListByBudget(ctx, budget.ID)
	if err != nil {
		log.Fatalf("Failed to list default categories: %v", err)
	}
	for _, category := range defaults {
		if _, err := categoryService.Delete(ctx, category.ID); err != nil {
			log.Fatalf("Failed to clear default category %q: %v", category.Name, err)
		}
	}

	var foodID uint
	for _, demo := range demoCategories {
		amount, err := decimal.NewFromString(demo.amount)
		if err != nil {
			log.Fatalf("Invalid demo amount %q: %v", demo.amount, err)
		}
		category, err := categoryService.Create(ctx, budget.ID, demo.name, amount)
		if err != nil {
			log.Fatalf("Failed to create category %q: %v", demo.name, err)
		}
		if demo.name == "Food" {
			foodID = category.ID
		}
		log.Printf("Created category %q with allocation %s", demo.name, demo.amount)
	}

	// A couple of expenses so the dashboard has something to show.
	expenses := []struct {
		amount string
		desc   string
		days   int
	}{
		{"42.50", "groceries", 3},
		{"18.75", "takeaway", 1},
	}
	for _, expense := range expenses {
		amount, _ := decimal.NewFromString(expense.amount)
		date := time.Now().AddDate(0, 0, -expense.days)
		if _, err := transactionService.Create(ctx, budget.ID, amount, foodID, date, expense.desc); err != nil {
			log.Fatalf("Failed to create transaction %q: %v", expense.desc, err)
		}
		log.Printf("Recorded expense %s (%s)", expense.amount, expense.desc)
	}

	log.Println("Seed completed successfully!")
}
