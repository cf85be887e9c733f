package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"
	"io"

	"github.com/m-mizutani/folio/pkg/domain/model"
	"github.com/m-mizutani/folio/pkg/domain/types"
)

// Target receives a rendered fragment as its entire content.
type Target interface {
	Set(fragment model.Fragment)
}

type UseCase interface {
	RenderContent(ctx context.Context, target Target)
	RenderRepoList(ctx context.Context, target Target)
	Bootstrap(ctx context.Context, page *model.Page)
	WritePage(ctx context.Context, w io.Writer) error

	// ExportPage renders the page once, writes it to w when w is not nil and
	// uploads the same bytes as object when object is not empty.
	ExportPage(ctx context.Context, w io.Writer, object types.GCSObject) error
}
