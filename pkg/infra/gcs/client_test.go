package gcs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/infra/gcs"
	"github.com/m-mizutani/folio/pkg/utils/safe"
	"github.com/m-mizutani/folio/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
	"google.golang.org/api/option"
)

func TestNew(t *testing.T) {
	t.Run("bucket is required", func(t *testing.T) {
		_, err := gcs.New(context.Background(), "", option.WithoutAuthentication())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("object name is required", func(t *testing.T) {
		client := gt.R1(gcs.New(context.Background(), "bucket", option.WithoutAuthentication())).NoError(t)
		defer safe.Close(client)

		err := client.Put(context.Background(), "", "text/html", []byte("x"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestPut_Integration(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")
	ctx := context.Background()

	client := gt.R1(gcs.New(ctx, types.GCSBucket(bucket))).NoError(t)
	defer safe.Close(client)

	object := types.GCSObject(fmt.Sprintf("folio-test/%d.html", time.Now().UnixNano()))
	gt.NoError(t, client.Put(ctx, object, "text/html; charset=utf-8", []byte("<p>test</p>")))
}
