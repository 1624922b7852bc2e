package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pennywise/internal/service"
)

// SummaryHandler exposes derived budget figures. Amounts are rounded to two
// decimal places here, at the boundary, never mid-computation.
type SummaryHandler struct {
	summaryService service.SummaryService
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// RemainingResponse carries an unallocated or unspent amount.
type RemainingResponse struct {
	RemainingBudget string `json:"remainingBudget"`
}

// SpentResponse carries a spent total.
type SpentResponse struct {
	TotalSpent string `json:"totalSpent"`
}

// BudgetedResponse carries an allocation total.
type BudgetedResponse struct {
	TotalBudgeted string `json:"totalBudgeted"`
}

// BudgetRemaining godoc
// @Summary Budget amount minus the sum of category allocations
// @Tags summary
// @Produce json
// @Param budgetId path int true "Budget ID"
// @Success 200 {object} RemainingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget-remaining/{budgetId} [get]
func (h *SummaryHandler) BudgetRemaining(c echo.Context) error {
	budgetID, err := parseUintParam(c, "budgetId")
	if err != nil {
		return err
	}
	remaining, err := h.summaryService.RemainingBudget(c.Request().Context(), budgetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, RemainingResponse{RemainingBudget: remaining.StringFixed(2)})
}

// BudgetSpent godoc
// @Summary Sum of a budget's transactions
// @Tags summary
// @Produce json
// @Param budgetId path int true "Budget ID"
// @Success 200 {object} SpentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget-spent/{budgetId} [get]
func (h *SummaryHandler) BudgetSpent(c echo.Context) error {
	budgetID, err := parseUintParam(c, "budgetId")
	if err != nil {
		return err
	}
	total, err := h.summaryService.TotalSpent(c.Request().Context(), budgetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, SpentResponse{TotalSpent: total.StringFixed(2)})
}

// BudgetTotal godoc
// @Summary Sum of a budget's category allocations
// @Tags summary
// @Produce json
// @Param budgetId path int true "Budget ID"
// @Success 200 {object} BudgetedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget-total/{budgetId} [get]
func (h *SummaryHandler) BudgetTotal(c echo.Context) error {
	budgetID, err := parseUintParam(c, "budgetId")
	if err != nil {
		return err
	}
	total, err := h.summaryService.TotalBudgeted(c.Request().Context(), budgetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, BudgetedResponse{TotalBudgeted: total.StringFixed(2)})
}

// CategoryRemaining godoc
// @Summary Category allocation minus the sum of its transactions
// @Tags summary
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {object} RemainingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /category-remaining/{categoryId} [get]
func (h *SummaryHandler) CategoryRemaining(c echo.Context) error {
	categoryID, err := parseUintParam(c, "categoryId")
	if err != nil {
		return err
	}
	remaining, err := h.summaryService.CategoryRemaining(c.Request().Context(), categoryID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, RemainingResponse{RemainingBudget: remaining.StringFixed(2)})
}

// CategorySpent godoc
// @Summary Sum of a category's transactions
// @Tags summary
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {object} SpentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /category-spent/{categoryId} [get]
func (h *SummaryHandler) CategorySpent(c echo.Context) error {
	categoryID, err := parseUintParam(c, "categoryId")
	if err != nil {
		return err
	}
	total, err := h.summaryService.CategoryTotalSpent(c.Request().Context(), categoryID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, SpentResponse{TotalSpent: total.StringFixed(2)})
}
