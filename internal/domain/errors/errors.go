package errors

import (
	"net/http"

	"fleetplan/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Fleet and input errors, raised before a model is handed to the solver
	ErrInvalidFleet = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FLEET",
		"vehicle count must be at least 1 and capacity must be positive",
		"",
	)

	ErrDemandExceedsCapacity = NewBaseError(
		http.StatusBadRequest,
		"DEMAND_EXCEEDS_CAPACITY",
		"a node demand exceeds the vehicle capacity",
		"",
	)

	ErrInvalidNodes = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NODES",
		"node table is invalid",
		"",
	)

	ErrTooManyNodes = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"TOO_MANY_NODES",
		"node count exceeds the configured limit",
		"",
	)

	// Plan-related errors
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"plan not found",
		"",
	)

	ErrPlanNotReady = NewBaseError(
		http.StatusConflict,
		"PLAN_NOT_READY",
		"plan has not been solved yet",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"route not found in plan",
		"",
	)

	// Solver-related errors
	ErrSolverUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SOLVER_UNAVAILABLE",
		"MILP solver is not available",
		"",
	)

	ErrSolverFailed = NewBaseError(
		http.StatusBadGateway,
		"SOLVER_FAILED",
		"MILP solver did not produce a result",
		"",
	)

	// Artifact-related errors
	ErrExportFailed = NewBaseError(
		http.StatusInternalServerError,
		"EXPORT_FAILED",
		"failed to export plan artifacts",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid access token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
