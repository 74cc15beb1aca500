// Package errors provides the application error taxonomy. All failures the
// ledger or handlers surface to a caller are AppErrors with a stable code, so
// responses stay consistent and internal details never leak out.
package errors

import "net/http"

// AppError is a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an
// internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Trade validation errors. All of these are detected before any ledger state
// is written, so a rejected trade is always a no-op.
var (
	ErrInsufficientFunds    = &AppError{Code: "INSUFFICIENT_FUNDS", Message: "Not enough cash for this order", StatusCode: http.StatusBadRequest}
	ErrInsufficientHoldings = &AppError{Code: "INSUFFICIENT_HOLDINGS", Message: "Not enough shares held for this sale", StatusCode: http.StatusBadRequest}
	ErrInvalidQuantity      = &AppError{Code: "INVALID_QUANTITY", Message: "Quantity must be a positive integer", StatusCode: http.StatusBadRequest}
	ErrInvalidReason        = &AppError{Code: "INVALID_REASON", Message: "A trade reason is required", StatusCode: http.StatusBadRequest}
)

// Market errors.
var (
	ErrSecurityNotFound = &AppError{Code: "SECURITY_NOT_FOUND", Message: "Security not found", StatusCode: http.StatusNotFound}
)
