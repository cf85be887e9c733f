package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/folio/pkg/cli/config"
	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/folio/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func renderCommand() *cli.Command {
	var (
		output string

		github  config.GitHub
		content config.Content
		render  config.Render
		storage config.Storage
		sentry  config.Sentry
	)
	renderFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Output file of the rendered page, '-' for stdout, empty to skip",
			Value:       "-",
			Sources:     cli.EnvVars("FOLIO_OUTPUT"),
			Destination: &output,
		},
	}

	return &cli.Command{
		Name:    "render",
		Aliases: []string{"r"},
		Usage:   "Render the portfolio page once as static HTML",
		Flags: slice.Flatten(
			renderFlags,
			github.Flags(),
			content.Flags(),
			render.Flags(),
			storage.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting render",
				slog.String("Output", output),
				slog.Any("GitHub", github),
				slog.Any("Content", content),
				slog.Any("Render", render),
				slog.Any("Storage", storage),
				slog.Any("Sentry", &sentry),
			)

			flush, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flush()

			gcsClient, err := storage.NewClient(ctx)
			if err != nil {
				return err
			}
			var store interfaces.Storage
			if gcsClient != nil {
				defer safe.Close(gcsClient)
				store = gcsClient
			}

			uc, err := newUseCase(ctx, &github, &content, &render, store)
			if err != nil {
				return err
			}

			var object types.GCSObject
			if storage.Enabled() {
				object = storage.Object()
			}

			return exportPage(ctx, uc, output, object)
		},
	}
}

// exportPage renders the page once for both the output and the object.
func exportPage(ctx context.Context, uc interfaces.UseCase, output string, object types.GCSObject) error {
	switch output {
	case "":
		return uc.ExportPage(ctx, nil, object)
	case "-":
		return uc.ExportPage(ctx, os.Stdout, object)
	}

	if err := writePageFile(output, func(w io.Writer) error {
		return uc.ExportPage(ctx, w, object)
	}); err != nil {
		return err
	}
	logging.From(ctx).Info("page written", slog.String("path", output))

	return nil
}

// writePageFile writes to a temporary file next to path and renames it into
// place, so path never holds a partial page.
func writePageFile(path string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".folio-*.html")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file", goerr.V("path", path))
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		safe.Close(tmp)
		safe.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to close temporary file", goerr.V("path", tmpName))
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to set file mode", goerr.V("path", tmpName))
	}
	if err := os.Rename(tmpName, path); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to move page into place", goerr.V("path", path))
	}

	return nil
}
