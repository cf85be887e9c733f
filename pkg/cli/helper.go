package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/folio/pkg/cli/config"
	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/infra"
	"github.com/m-mizutani/folio/pkg/usecase"
	"github.com/m-mizutani/folio/pkg/utils/logging"
)

// newUseCase wires the clients shared by serve and render. storage may be nil.
func newUseCase(ctx context.Context, gh *config.GitHub, content *config.Content, render *config.Render, storage interfaces.Storage) (*usecase.UseCase, error) {
	if gh.DetectOwner() {
		owner, err := DetectGitHubOwner(".")
		if err != nil {
			return nil, err
		}
		logging.From(ctx).Info("detected GitHub user from git remote", slog.Any("user", owner))
		gh.SetOwner(owner)
	}

	ucOptions, err := render.Options()
	if err != nil {
		return nil, err
	}

	httpClient := render.HTTPClient()

	ghClient, err := gh.New(httpClient)
	if err != nil {
		return nil, err
	}

	src, err := content.New(httpClient)
	if err != nil {
		return nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithContent(src),
	}
	if storage != nil {
		infraOptions = append(infraOptions, infra.WithStorage(storage))
	}

	ucOptions = append(ucOptions, usecase.WithOwner(gh.Owner()))
	return usecase.New(infra.New(infraOptions...), ucOptions...), nil
}
