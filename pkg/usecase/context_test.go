package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/folio/pkg/usecase"
	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestDetachContext(t *testing.T) {
	logger := slog.Default().With("component", "bootstrap")
	fixedTime := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	origin, cancel := context.WithCancel(context.Background())
	origin = logging.With(origin, logger)
	reqID, origin := logging.CtxRequestID(origin)
	origin = logging.CtxWithTime(origin, func() time.Time { return fixedTime })

	detached := usecase.DetachContext(origin)
	cancel()

	t.Run("survives cancellation of the origin", func(t *testing.T) {
		gt.V(t, origin.Err()).Equal(context.Canceled)
		gt.V(t, detached.Err()).Equal(nil)
	})

	t.Run("keeps logger, request ID and clock", func(t *testing.T) {
		gt.V(t, logging.From(detached)).Equal(logger)

		got, _ := logging.CtxRequestID(detached)
		gt.V(t, got).Equal(reqID)

		gt.V(t, logging.CtxTime(detached)).Equal(fixedTime)
	})
}
