package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"io"
	"log/slog"
	"time"

	"github.com/m-mizutani/folio/pkg/domain/model"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const pageContentType = "text/html; charset=utf-8"

//go:embed templates/page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Title       string
	AboutKey    types.TargetKey
	About       template.HTML
	ProjectsKey types.TargetKey
	Projects    template.HTML
	RenderedAt  time.Time
}

// WritePage renders a complete page to w. Both renderers are started with
// Bootstrap and each region is taken as it is when its renderer finishes or
// the wait timeout expires, whichever comes first.
func (x *UseCase) WritePage(ctx context.Context, w io.Writer) error {
	page := model.NewPage()
	x.Bootstrap(ctx, page)

	waitCtx := ctx
	if x.waitTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, x.waitTimeout)
		defer cancel()
	}

	about := page.About.Wait(waitCtx)
	projects := page.Projects.Wait(waitCtx)
	if !page.About.Finished() || !page.Projects.Finished() {
		logging.From(ctx).Warn("page rendered before all regions were ready",
			slog.Bool("about", page.About.Finished()),
			slog.Bool("projects", page.Projects.Finished()),
		)
	}

	data := pageData{
		Title:       page.TitleOr(x.title),
		AboutKey:    page.About.Key(),
		About:       about.HTML(),
		ProjectsKey: page.Projects.Key(),
		Projects:    projects.HTML(),
		RenderedAt:  logging.CtxTime(ctx),
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return goerr.Wrap(err, "failed to write page")
	}

	return nil
}

// ExportPage renders the page once and hands the same bytes to w and to the
// configured storage. w may be nil and object may be empty to skip either.
// Nothing is uploaded when writing to w fails.
func (x *UseCase) ExportPage(ctx context.Context, w io.Writer, object types.GCSObject) error {
	storage := x.clients.Storage()
	if object != "" && storage == nil {
		return goerr.Wrap(types.ErrInvalidOption, "storage is not configured", goerr.V("object", object))
	}

	var buf bytes.Buffer
	if err := x.WritePage(ctx, &buf); err != nil {
		return err
	}

	if w != nil {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return goerr.Wrap(err, "failed to write page")
		}
	}

	if object == "" {
		return nil
	}

	if err := storage.Put(ctx, object, pageContentType, buf.Bytes()); err != nil {
		return goerr.Wrap(err, "failed to publish page", goerr.V("object", object))
	}

	logging.From(ctx).Info("page published", slog.Any("object", object), slog.Int("size", buf.Len()))
	return nil
}
