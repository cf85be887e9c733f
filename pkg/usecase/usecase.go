package usecase

import (
	"time"

	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/infra"
)

const (
	// DefaultTitle is used when the about content has no title in its metadata.
	DefaultTitle = "Portfolio"

	// DefaultWaitTimeout bounds how long a page waits for its renderers.
	DefaultWaitTimeout = 10 * time.Second

	repoSortKey = "updated"
)

type UseCase struct {
	clients *infra.Clients

	owner       types.GitHubOwner
	perPage     int
	title       string
	waitTimeout time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithOwner sets the GitHub user whose repositories are listed.
func WithOwner(owner types.GitHubOwner) Option {
	return func(x *UseCase) {
		x.owner = owner
	}
}

func WithPerPage(n int) Option {
	return func(x *UseCase) {
		x.perPage = n
	}
}

func WithTitle(title string) Option {
	return func(x *UseCase) {
		x.title = title
	}
}

// WithWaitTimeout bounds how long WritePage waits for the renderers. Zero
// means the caller's context is the only bound.
func WithWaitTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.waitTimeout = d
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:     clients,
		owner:       types.DefaultGitHubOwner,
		perPage:     types.DefaultRepoPerPage,
		title:       DefaultTitle,
		waitTimeout: DefaultWaitTimeout,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
