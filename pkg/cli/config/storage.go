package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Storage is the optional Cloud Storage target of the static export.
type Storage struct {
	bucket      string
	object      string
	credentials string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Cloud Storage bucket to publish the page to",
			Category:    "Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("FOLIO_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-object",
			Usage:       "Object name of the published page",
			Category:    "Storage",
			Value:       "index.html",
			Destination: &x.object,
			Sources:     cli.EnvVars("FOLIO_GCS_OBJECT"),
		},
		&cli.StringFlag{
			Name:        "gcs-credentials",
			Usage:       "Service account key file, application default credentials are used if empty",
			Category:    "Storage",
			Destination: &x.credentials,
			Sources:     cli.EnvVars("FOLIO_GCS_CREDENTIALS"),
		},
	}
}

func (x *Storage) Enabled() bool {
	return x.bucket != ""
}

func (x *Storage) Object() types.GCSObject {
	return types.GCSObject(x.object)
}

// NewClient returns nil without error when no bucket is configured.
func (x *Storage) NewClient(ctx context.Context) (*gcs.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var options []option.ClientOption
	if x.credentials != "" {
		options = append(options, option.WithCredentialsFile(x.credentials))
	}

	return gcs.New(ctx, types.GCSBucket(x.bucket), options...)
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Bucket", x.bucket),
		slog.String("Object", x.object),
		slog.String("Credentials", x.credentials),
	)
}
