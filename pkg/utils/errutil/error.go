package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

// HandleError reports err to Sentry with its goerr values and request
// identifiers, then logs it.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}

		reqID, _ := logging.CtxRequestID(ctx)
		scope.SetTag("request_id", reqID.String())
		if sessionID := logging.CtxSessionID(ctx); sessionID != "" {
			scope.SetTag("session", sessionID.LogValue().String())
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
