package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pennywise/internal/errors"
	"pennywise/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents a category creation request.
type CreateCategoryRequest struct {
	BudgetID       uint   `json:"budgetId" validate:"required"`
	Name           string `json:"name" validate:"required,max=255"`
	BudgetedAmount string `json:"budgetedAmount" validate:"required"`
}

// UpdateCategoryRequest represents a category change.
type UpdateCategoryRequest struct {
	CategoryID        uint   `json:"categoryId" validate:"required"`
	NewName           string `json:"newName" validate:"required,max=255"`
	NewBudgetedAmount string `json:"newBudgetedAmount" validate:"required"`
}

// DeleteCategoryRequest identifies the category to remove.
type DeleteCategoryRequest struct {
	CategoryID uint `json:"categoryId" validate:"required"`
}

// CategoryIDResponse carries a category id.
type CategoryIDResponse struct {
	CategoryID uint `json:"categoryId"`
}

// ListCategories godoc
// @Summary List a budget's categories
// @Tags categories
// @Produce json
// @Param budgetId path int true "Budget ID"
// @Success 200 {array} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/{budgetId} [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	budgetID, err := parseUintParam(c, "budgetId")
	if err != nil {
		return err
	}
	categories, err := h.categoryService.ListByBudget(c.Request().Context(), budgetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Add a category to a budget
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category payload"
// @Success 201 {object} CategoryIDResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/create [put]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	amount, err := parseAmount(req.BudgetedAmount)
	if err != nil {
		return err
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.BudgetID, req.Name, amount)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, CategoryIDResponse{CategoryID: category.ID})
}

// UpdateCategory godoc
// @Summary Rename a category and replace its allocation
// @Tags categories
// @Accept json
// @Produce json
// @Param request body UpdateCategoryRequest true "Category change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/update [patch]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	amount, err := parseAmount(req.NewBudgetedAmount)
	if err != nil {
		return err
	}

	updated, err := h.categoryService.Update(c.Request().Context(), req.CategoryID, req.NewName, amount)
	if err != nil {
		return httpError(err)
	}
	if !updated {
		return httpError(errors.ErrCategoryNotFound)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "category updated"})
}

// DeleteCategory godoc
// @Summary Delete a category and its transactions
// @Tags categories
// @Accept json
// @Produce json
// @Param request body DeleteCategoryRequest true "Category to delete"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/delete [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	var req DeleteCategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}

	deleted, err := h.categoryService.Delete(c.Request().Context(), req.CategoryID)
	if err != nil {
		return httpError(err)
	}
	if !deleted {
		return httpError(errors.ErrCategoryNotFound)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}
