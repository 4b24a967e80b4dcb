// Package context carries request scoped values between echo and the usecases.
package context

import (
	"context"
	"log/slog"

	"fleetplan/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeySubject is the echo key holding the authenticated token subject.
	KeySubject ContextKey = "subject"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = constants.HeaderRequestID
)

// GetRequestID extracts the request ID from echo.Context, empty when unset.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return ""
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetSubject returns the token subject set by the auth middleware.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(string(KeySubject)).(string)

	return subject, ok && subject != ""
}

// SetSubject stores the token subject.
func SetSubject(c echo.Context, subject string) {
	c.Set(string(KeySubject), subject)
}
