package gcs

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// Client uploads rendered pages to a Cloud Storage bucket.
type Client struct {
	client *storage.Client
	bucket types.GCSBucket
}

var _ interfaces.Storage = (*Client)(nil)

func New(ctx context.Context, bucket types.GCSBucket, options ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is required")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

// Put overwrites the object with data.
func (x *Client) Put(ctx context.Context, object types.GCSObject, contentType string, data []byte) error {
	if object == "" {
		return goerr.Wrap(types.ErrInvalidOption, "object name is required", goerr.V("bucket", x.bucket))
	}

	w := x.client.Bucket(x.bucket.String()).Object(object.String()).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "no-cache"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", object),
		)
	}

	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", object),
		)
	}

	return nil
}

func (x *Client) Close() error {
	return x.client.Close()
}
