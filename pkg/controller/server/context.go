package server

import (
	"context"

	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

// DetachContext creates a new context.Background() based context that inherits
// logger, request ID, session ID and time function from the original context.
// Background goroutines started by a handler use it because the request
// context is cancelled when the response is sent.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := context.Background()

	bgCtx = logging.With(bgCtx, logging.From(ctx))

	return logging.InheritContextValues(bgCtx, ctx)
}
