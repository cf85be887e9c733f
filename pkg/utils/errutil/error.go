package errutil

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError logs the error and reports it to Sentry. goerr values and the
// request ID are attached to the Sentry scope. Extra attrs go to the log only.
func HandleError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		reqID, _ := logging.CtxRequestID(ctx)
		scope.SetTag("request_id", reqID.String())
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	args := []any{
		slog.Any("error", err),
		slog.Any("sentry.EventID", evID),
	}
	for _, attr := range attrs {
		args = append(args, attr)
	}
	logging.From(ctx).Error(msg, args...)
}
