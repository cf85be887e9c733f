package usecase

import (
	"context"

	"github.com/m-mizutani/folio/pkg/domain/model"
)

// Bootstrap starts both renderers for page and returns immediately. Each
// renderer runs in its own goroutine and marks its slot done when it returns,
// so a slow or failing one never holds back the other.
func (x *UseCase) Bootstrap(ctx context.Context, page *model.Page) {
	bgCtx := DetachContext(ctx)

	go func() {
		defer page.About.Done()
		meta := x.renderContent(bgCtx, page.About)
		if meta.Title != "" {
			page.SetTitle(meta.Title)
		}
	}()

	go func() {
		defer page.Projects.Done()
		x.RenderRepoList(bgCtx, page.Projects)
	}()
}
