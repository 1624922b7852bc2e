package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pennywise/internal/errors"
	"pennywise/internal/service"
)

// BudgetHandler handles budget endpoints.
type BudgetHandler struct {
	budgetService service.BudgetService
}

// NewBudgetHandler creates a new budget handler.
func NewBudgetHandler(budgetService service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents a budget creation request.
type CreateBudgetRequest struct {
	UserID uint   `json:"userId" validate:"required"`
	Budget string `json:"budget" validate:"required"`
}

// UpdateBudgetRequest represents a budget amount change.
type UpdateBudgetRequest struct {
	UserID    uint   `json:"userId" validate:"required"`
	NewBudget string `json:"newBudget" validate:"required"`
}

// DeleteBudgetRequest identifies the budget to remove by its owner.
type DeleteBudgetRequest struct {
	UserID uint `json:"userId" validate:"required"`
}

// BudgetIDResponse carries a budget id.
type BudgetIDResponse struct {
	BudgetID uint `json:"budgetId"`
}

// GetBudget godoc
// @Summary Get a user's budget
// @Tags budget
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} model.Budget
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget/{userId} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return err
	}
	budget, err := h.budgetService.GetByUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, budget)
}

// CreateBudget godoc
// @Summary Create a budget with default categories
// @Tags budget
// @Accept json
// @Produce json
// @Param request body CreateBudgetRequest true "Budget payload"
// @Success 201 {object} BudgetIDResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget/create [put]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	amount, err := parseAmount(req.Budget)
	if err != nil {
		return err
	}

	budget, err := h.budgetService.Create(c.Request().Context(), req.UserID, amount)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, BudgetIDResponse{BudgetID: budget.ID})
}

// UpdateBudget godoc
// @Summary Replace a user's budget amount
// @Tags budget
// @Accept json
// @Produce json
// @Param request body UpdateBudgetRequest true "New amount"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget/update [patch]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	var req UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	amount, err := parseAmount(req.NewBudget)
	if err != nil {
		return err
	}

	updated, err := h.budgetService.UpdateAmount(c.Request().Context(), req.UserID, amount)
	if err != nil {
		return httpError(err)
	}
	if !updated {
		return httpError(errors.ErrBudgetNotFound)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "budget updated"})
}

// DeleteBudget godoc
// @Summary Delete a user's budget with its categories and transactions
// @Tags budget
// @Accept json
// @Produce json
// @Param request body DeleteBudgetRequest true "Budget owner"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget/delete [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	var req DeleteBudgetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}

	deleted, err := h.budgetService.Delete(c.Request().Context(), req.UserID)
	if err != nil {
		return httpError(err)
	}
	if !deleted {
		return httpError(errors.ErrBudgetNotFound)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "budget deleted"})
}
