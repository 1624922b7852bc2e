package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pennywise/internal/errors"
	"pennywise/internal/service"
)

// TransactionHandler handles transaction endpoints.
type TransactionHandler struct {
	transactionService service.TransactionService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents an expense recording request.
type CreateTransactionRequest struct {
	BudgetID    uint   `json:"budgetId" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	CategoryID  uint   `json:"categoryId" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateTransactionRequest represents a transaction change.
type UpdateTransactionRequest struct {
	TransactionID  uint   `json:"transactionId" validate:"required"`
	NewAmount      string `json:"newAmount" validate:"required"`
	NewCategoryID  uint   `json:"newCategoryId" validate:"required"`
	NewDate        string `json:"newDate" validate:"required"`
	NewDescription string `json:"newDescription" validate:"max=500"`
}

// DeleteTransactionRequest identifies the transaction to remove.
type DeleteTransactionRequest struct {
	TransactionID uint `json:"transactionId" validate:"required"`
}

// TransactionIDResponse carries a transaction id.
type TransactionIDResponse struct {
	TransactionID uint `json:"transactionId"`
}

// ListTransactions godoc
// @Summary List a budget's transactions, newest date first
// @Tags transactions
// @Produce json
// @Param budgetId path int true "Budget ID"
// @Success 200 {array} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transactions/{budgetId} [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	budgetID, err := parseUintParam(c, "budgetId")
	if err != nil {
		return err
	}
	transactions, err := h.transactionService.ListByBudget(c.Request().Context(), budgetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transactions)
}

// CreateTransaction godoc
// @Summary Record an expense against a category
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} TransactionIDResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transactions/create [put]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(
		c.Request().Context(),
		req.BudgetID,
		amount,
		req.CategoryID,
		date,
		req.Description,
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, TransactionIDResponse{TransactionID: transaction.ID})
}

// UpdateTransaction godoc
// @Summary Replace a transaction's amount, category, date and description
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body UpdateTransactionRequest true "Transaction change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transactions/update [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	amount, err := parseAmount(req.NewAmount)
	if err != nil {
		return err
	}
	date, err := parseDate(req.NewDate)
	if err != nil {
		return err
	}

	updated, err := h.transactionService.Update(
		c.Request().Context(),
		req.TransactionID,
		amount,
		req.NewCategoryID,
		date,
		req.NewDescription,
	)
	if err != nil {
		return httpError(err)
	}
	if !updated {
		return httpError(errors.ErrTransactionNotFound)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "transaction updated"})
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body DeleteTransactionRequest true "Transaction to delete"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transactions/delete [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	var req DeleteTransactionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}

	deleted, err := h.transactionService.Delete(c.Request().Context(), req.TransactionID)
	if err != nil {
		return httpError(err)
	}
	if !deleted {
		return httpError(errors.ErrTransactionNotFound)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "transaction deleted"})
}
