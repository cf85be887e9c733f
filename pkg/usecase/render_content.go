package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/model"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/markdown"
	"github.com/m-mizutani/folio/pkg/utils/errutil"
	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// RenderContent fetches the about Markdown and writes it into target. The
// loading placeholder is set first and is always replaced, either by the
// rendered content or by a warning block.
func (x *UseCase) RenderContent(ctx context.Context, target interfaces.Target) {
	x.renderContent(ctx, target)
}

func (x *UseCase) renderContent(ctx context.Context, target interfaces.Target) markdown.Metadata {
	target.Set(loadingFragment())

	src := x.clients.Content()
	if src == nil {
		err := goerr.Wrap(types.ErrInvalidOption, "content source is not configured")
		errutil.HandleError(ctx, "failed to load content", err)
		target.Set(contentWarningFragment(types.DefaultContentLocation, err))
		return markdown.Metadata{}
	}

	location := src.Location()
	logger := logging.From(ctx).With(slog.Any("location", location))
	if strings.HasPrefix(strings.ToLower(location.String()), "file://") {
		logger.Warn("content location is a file:// URL, serving the content directory over HTTP is recommended")
	}
	logger.Info("loading markdown content")

	fragment, meta, err := fetchContent(ctx, src)
	if err != nil {
		errutil.HandleError(ctx, "failed to load content", err, slog.Any("location", location))
		target.Set(contentWarningFragment(location, err))
		return meta
	}

	if meta.Err != nil {
		logger.Warn("frontmatter could not be decoded and was skipped", slog.Any("error", meta.Err))
	}

	target.Set(fragment)
	logger.Debug("markdown content rendered", slog.Int("size", len(fragment)))
	return meta
}

func fetchContent(ctx context.Context, src interfaces.ContentSource) (model.Fragment, markdown.Metadata, error) {
	text, err := src.Fetch(ctx)
	if err != nil {
		return "", markdown.Metadata{}, goerr.Wrap(err, "failed to fetch content")
	}

	if strings.TrimSpace(text) == "" {
		return "", markdown.Metadata{}, goerr.Wrap(types.ErrEmptyContent, "content has no text",
			goerr.V("location", src.Location()))
	}

	rendered, meta := markdown.Convert(text)
	return model.Fragment(rendered), meta, nil
}
