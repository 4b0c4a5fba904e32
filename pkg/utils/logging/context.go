package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/livegit/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns request ID from context. If request ID is not set, return new request ID and context with it
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

type ctxSessionIDKey struct{}

// WithSessionID returns a new context carrying the dashboard session ID
func WithSessionID(ctx context.Context, id types.SessionID) context.Context {
	return context.WithValue(ctx, ctxSessionIDKey{}, id)
}

// CtxSessionID returns the session ID of ctx, or empty if none
func CtxSessionID(ctx context.Context) types.SessionID {
	if id, ok := ctx.Value(ctxSessionIDKey{}).(types.SessionID); ok {
		return id
	}
	return ""
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}

type TimeFunc func() time.Time

// CtxTime returns time from context. If time function is not set, return current time
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

// CtxWithTime returns a new context with time function
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// InheritContextValues copies request ID, session ID and time function from
// src to dst. Logger is not copied; use With() for it.
func InheritContextValues(dst, src context.Context) context.Context {
	if reqID, ok := src.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		dst = context.WithValue(dst, ctxRequestIDKey{}, reqID)
	}

	if sessionID, ok := src.Value(ctxSessionIDKey{}).(types.SessionID); ok {
		dst = context.WithValue(dst, ctxSessionIDKey{}, sessionID)
	}

	if timeFunc, ok := src.Value(ctxTimeKey{}).(TimeFunc); ok {
		dst = context.WithValue(dst, ctxTimeKey{}, timeFunc)
	}

	return dst
}
