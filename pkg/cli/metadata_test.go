package cli_test

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/m-mizutani/folio/pkg/cli"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseGitHubOwner(t *testing.T) {
	testCases := map[string]types.GitHubOwner{
		"git@github.com:LUBEN09/portfolio.git":     "LUBEN09",
		"git@github.com:LUBEN09/portfolio":         "LUBEN09",
		"https://github.com/LUBEN09/portfolio.git": "LUBEN09",
		"https://github.com/LUBEN09/portfolio":     "LUBEN09",
		"https://gitlab.com/LUBEN09/portfolio.git": "",
		"https://github.com/LUBEN09":               "",
		"git@github.com:/portfolio.git":            "",
	}

	for url, want := range testCases {
		t.Run(url, func(t *testing.T) {
			gt.V(t, cli.ParseGitHubOwnerForTest(url)).Equal(want)
		})
	}
}

func TestDetectGitHubOwner(t *testing.T) {
	t.Run("origin remote", func(t *testing.T) {
		dir := t.TempDir()
		repo := gt.R1(git.PlainInit(dir, false)).NoError(t)
		gt.R1(repo.CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: []string{"https://github.com/octocat/hello-world.git"},
		})).NoError(t)

		owner := gt.R1(cli.DetectGitHubOwner(dir)).NoError(t)
		gt.V(t, owner).Equal(types.GitHubOwner("octocat"))
	})

	t.Run("no origin", func(t *testing.T) {
		dir := t.TempDir()
		gt.R1(git.PlainInit(dir, false)).NoError(t)

		_, err := cli.DetectGitHubOwner(dir)
		gt.Error(t, err)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := cli.DetectGitHubOwner(t.TempDir())
		gt.Error(t, err)
	})
}
