package usecase

import (
	"context"

	"github.com/m-mizutani/folio/pkg/utils/logging"
)

// DetachContext returns a context that is never cancelled but keeps the
// logger, request ID and clock of ctx. Renderers started by Bootstrap run on
// it so that a finished request does not abort them.
func DetachContext(ctx context.Context) context.Context {
	detached := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(detached, ctx)
}
