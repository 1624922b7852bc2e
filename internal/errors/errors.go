package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrBudgetNotFound is returned when a user has no budget or the budget id is unknown.
	ErrBudgetNotFound = errors.New("budget not found")
	// ErrCategoryNotFound is returned when a category id is unknown.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrTransactionNotFound is returned when a transaction id is unknown.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrBudgetExists is returned when a user who already has a budget creates another.
	ErrBudgetExists = errors.New("user already has a budget")
	// ErrUnknownBudget is returned when a write references a budget that does not exist.
	ErrUnknownBudget = errors.New("referenced budget does not exist")
	// ErrUnknownCategory is returned when a write references a category that does not exist.
	ErrUnknownCategory = errors.New("referenced category does not exist")
	// ErrInvalidAmount is returned when a monetary value is negative or malformed.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation and
// referential errors keep their specific code; anything unrecognized is a
// storage-level failure and becomes a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrBudgetNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BUDGET_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrTransactionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrBudgetExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "BUDGET_EXISTS")
	case errors.Is(err, ErrUnknownBudget):
		return NewHTTPError(http.StatusNotFound, err.Error(), "UNKNOWN_BUDGET")
	case errors.Is(err, ErrUnknownCategory):
		return NewHTTPError(http.StatusNotFound, err.Error(), "UNKNOWN_CATEGORY")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_AMOUNT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
