package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is private to avoid collisions with other packages' keys.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userLoginKey contextKey = "user_login"
	loggerKey    contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

func WithUserLogin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, userLoginKey, login)
}

func GetUserLogin(ctx context.Context) string {
	if login, ok := ctx.Value(userLoginKey).(string); ok {
		return login
	}
	return ""
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, falling back to the given
// default and finally to a nop logger so callers never get nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}
