package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ContentSource GitHub Storage

import (
	"context"

	"github.com/m-mizutani/folio/pkg/domain/model"
	"github.com/m-mizutani/folio/pkg/domain/types"
)

// ContentSource retrieves the raw Markdown text of the about section. The
// location is fixed when the source is built.
type ContentSource interface {
	Fetch(ctx context.Context) (string, error)
	Location() types.ContentLocation
}

type GitHub interface {
	ListUserRepos(ctx context.Context, input *ListUserReposInput) ([]*model.RepositorySummary, error)
}

type ListUserReposInput struct {
	Owner   types.GitHubOwner
	Sort    string
	PerPage int
}

// Storage publishes rendered pages.
type Storage interface {
	Put(ctx context.Context, object types.GCSObject, contentType string, data []byte) error
}
