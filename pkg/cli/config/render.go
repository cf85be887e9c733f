package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// DefaultServeHTTPTimeout bounds outbound requests of the long-running server,
// where every page load starts its own detached renderers.
const DefaultServeHTTPTimeout = 30 * time.Second

// Render holds page rendering settings shared by serve and render.
type Render struct {
	title       string
	perPage     int64
	waitTimeout time.Duration
	httpTimeout time.Duration
}

// NewRender returns settings whose --http-timeout defaults to httpTimeout.
func NewRender(httpTimeout time.Duration) Render {
	return Render{httpTimeout: httpTimeout}
}

func (x *Render) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Page title used when the content has no title in its frontmatter",
			Category:    "Render",
			Value:       usecase.DefaultTitle,
			Destination: &x.title,
			Sources:     cli.EnvVars("FOLIO_TITLE"),
		},
		&cli.Int64Flag{
			Name:        "per-page",
			Usage:       "Number of repositories requested from GitHub",
			Category:    "Render",
			Value:       types.DefaultRepoPerPage,
			Destination: &x.perPage,
			Sources:     cli.EnvVars("FOLIO_PER_PAGE"),
		},
		&cli.DurationFlag{
			Name:        "wait-timeout",
			Usage:       "Maximum time a page waits for its regions, 0 for no limit",
			Category:    "Render",
			Value:       usecase.DefaultWaitTimeout,
			Destination: &x.waitTimeout,
			Sources:     cli.EnvVars("FOLIO_WAIT_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of outbound HTTP requests, 0 for no limit",
			Category:    "Render",
			Value:       x.httpTimeout,
			Destination: &x.httpTimeout,
			Sources:     cli.EnvVars("FOLIO_HTTP_TIMEOUT"),
		},
	}
}

func (x *Render) HTTPClient() *http.Client {
	return &http.Client{Timeout: x.httpTimeout}
}

// maxPerPage is the largest page size the GitHub REST API accepts.
const maxPerPage = 100

func (x *Render) Options() ([]usecase.Option, error) {
	if x.perPage < 1 || x.perPage > maxPerPage {
		return nil, goerr.Wrap(types.ErrInvalidOption, "per-page must be between 1 and 100",
			goerr.V("per_page", x.perPage))
	}

	return []usecase.Option{
		usecase.WithTitle(x.title),
		usecase.WithPerPage(int(x.perPage)),
		usecase.WithWaitTimeout(x.waitTimeout),
	}, nil
}

func (x Render) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Title", x.title),
		slog.Int64("PerPage", x.perPage),
		slog.Duration("WaitTimeout", x.waitTimeout),
		slog.Duration("HTTPTimeout", x.httpTimeout),
	)
}
