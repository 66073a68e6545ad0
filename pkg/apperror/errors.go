package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Configuration (CFG) ----

// ErrMissingConfig reports every missing required configuration field in a
// single diagnostic, so operators fix the deployment in one pass.
func ErrMissingConfig(fields []string) *AppError {
	return New(
		"CFG_001",
		fmt.Sprintf("Missing required configuration: %s", strings.Join(fields, ", ")),
		http.StatusInternalServerError,
	)
}

// ---- Request Validation (VAL) ----

func ErrAmountRequired() *AppError {
	return New("VAL_001", "Amount is required", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrUnsupportedCurrency(currency string) *AppError {
	return New("VAL_003", fmt.Sprintf("Unsupported currency: %s", currency), http.StatusBadRequest)
}

// Validation returns a generic caller-input error.
func Validation(message string) *AppError {
	return New("VAL_004", message, http.StatusBadRequest)
}

// ---- Resource (RES) ----

// NotFound reports a resource the provider has no record of.
func NotFound(message string) *AppError {
	return New("RES_001", message, http.StatusNotFound)
}

// ---- External Provider (PRV) ----

// ErrProvider surfaces a KHQR provider failure. The provider's message is
// carried verbatim so third-party failures stay debuggable.
func ErrProvider(err error) *AppError {
	return Wrap("PRV_001", err.Error(), http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
