package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/model"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/utils/errutil"
	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// RenderRepoList writes one card per non-fork public repository of the
// configured owner into target. target is not touched before the listing
// completes.
func (x *UseCase) RenderRepoList(ctx context.Context, target interfaces.Target) {
	fragment, err := x.listRepos(ctx)
	if err != nil {
		errutil.HandleError(ctx, "failed to load repositories", err, slog.Any("owner", x.owner))
		target.Set(repoErrorFragment(x.owner, err))
		return
	}

	target.Set(fragment)
}

func (x *UseCase) listRepos(ctx context.Context) (model.Fragment, error) {
	gh := x.clients.GitHub()
	if gh == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if x.perPage < 1 {
		return "", goerr.Wrap(types.ErrInvalidOption, "page size must be positive", goerr.V("per_page", x.perPage))
	}

	repos, err := gh.ListUserRepos(ctx, &interfaces.ListUserReposInput{
		Owner:   x.owner,
		Sort:    repoSortKey,
		PerPage: x.perPage,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to list repositories", goerr.V("owner", x.owner))
	}

	if len(repos) == 0 {
		return noReposFragment(), nil
	}

	visible := model.FilterForks(repos)
	logging.From(ctx).Debug("repositories listed",
		slog.Any("owner", x.owner),
		slog.Int("total", len(repos)),
		slog.Int("visible", len(visible)),
	)

	return repoCardsFragment(visible)
}
