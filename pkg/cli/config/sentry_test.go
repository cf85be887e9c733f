package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/folio/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	names := flagNames(flags)
	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
	gt.True(t, names["sentry-release"])
}

func TestSentryConfigureWithoutDSN(t *testing.T) {
	sentryConfig := &config.Sentry{}

	flush, err := sentryConfig.Configure(context.Background())
	gt.NoError(t, err)
	flush()
}
