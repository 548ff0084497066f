// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// SetLevel replaces the global logger with one at the given level.
func SetLevel(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// LogContextKey is a type for context keys used by the logging package.
type LogContextKey string

// CorrelationID is the context key carrying the per-session correlation ID.
const CorrelationID LogContextKey = "correlation_id"

// GenerateCorrelationID creates a new unique correlation ID.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

// WithCorrelationID returns a new context with the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationID, id)
}

// ExtractCorrelationID retrieves the correlation ID from the context.
func ExtractCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(CorrelationID).(string); ok {
		return id
	}
	return ""
}

// StoreLogger provides structured logging for in-memory store operations.
type StoreLogger struct {
	tableName string
	logger    *Logger
}

// NewStoreLogger creates a new StoreLogger for the given table.
func NewStoreLogger(tableName string) *StoreLogger {
	return &StoreLogger{
		tableName: tableName,
		logger:    GlobalLogger,
	}
}

// LogWrite logs a store mutation (insert, update, delete).
func (l *StoreLogger) LogWrite(ctx context.Context, operation string, fields map[string]interface{}) {
	attrs := []any{
		slog.String("table", l.tableName),
		slog.String("operation", operation),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "store write", attrs...)
}

// LogError logs a store error.
func (l *StoreLogger) LogError(ctx context.Context, err error, operation string) {
	l.logger.WarnContext(ctx, "store error",
		slog.String("table", l.tableName),
		slog.String("operation", operation),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
		slog.String("error", err.Error()),
	)
}

// ServiceLogger provides structured logging for service method calls.
type ServiceLogger struct {
	serviceName string
	logger      *Logger
}

// NewServiceLogger creates a new ServiceLogger for the given service.
func NewServiceLogger(serviceName string) *ServiceLogger {
	return &ServiceLogger{
		serviceName: serviceName,
		logger:      GlobalLogger,
	}
}

// LogCall logs a service method call.
func (l *ServiceLogger) LogCall(ctx context.Context, method string, fields map[string]interface{}) {
	attrs := []any{
		slog.String("service", l.serviceName),
		slog.String("method", method),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "service call", attrs...)
}

// LogCallError logs a failed service method call.
func (l *ServiceLogger) LogCallError(ctx context.Context, method string, err error) {
	l.logger.WarnContext(ctx, "service call failed",
		slog.String("service", l.serviceName),
		slog.String("method", method),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
		slog.String("error", err.Error()),
	)
}
