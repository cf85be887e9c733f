package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DetectGitHubOwner returns the owner part of the GitHub "origin" remote of
// the git repository at dir.
func DetectGitHubOwner(dir string) (types.GitHubOwner, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	owner := parseGitHubOwner(url)
	if owner == "" {
		return "", goerr.New("failed to parse GitHub owner from git remote URL", goerr.V("url", url))
	}

	return owner, nil
}

// parseGitHubOwner accepts git@github.com:owner/repo(.git) and
// https://github.com/owner/repo(.git).
func parseGitHubOwner(url string) types.GitHubOwner {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		_, path, _ = strings.Cut(url, "github.com/")
	default:
		return ""
	}

	parts := strings.Split(strings.TrimSuffix(path, ".git"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}
	return types.GitHubOwner(parts[0])
}
