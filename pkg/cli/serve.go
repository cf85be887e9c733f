package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/folio/pkg/cli/config"
	"github.com/m-mizutani/folio/pkg/controller/server"
	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr         string
		cacheControl string

		github  config.GitHub
		content config.Content
		render  = config.NewRender(config.DefaultServeHTTPTimeout)
		sentry  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("FOLIO_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "cache-control",
			Usage:       "Cache-Control header of page responses",
			Value:       "no-cache",
			Sources:     cli.EnvVars("FOLIO_CACHE_CONTROL"),
			Destination: &cacheControl,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the portfolio page over HTTP",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			content.Flags(),
			render.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Content", content),
				slog.Any("Render", render),
				slog.Any("Sentry", &sentry),
			)

			flush, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flush()

			uc, err := newUseCase(ctx, &github, &content, &render, nil)
			if err != nil {
				return err
			}
			s := server.New(uc, server.WithCacheControl(cacheControl))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
