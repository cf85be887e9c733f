package config

import (
	"log/slog"
	"net/http"

	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds the repository listing settings. Authentication is optional:
// a token or a GitHub App installation raises the API rate limit.
type GitHub struct {
	owner       string
	detectOwner bool
	apiURL      string

	token      types.GitHubToken         `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-user",
			Usage:       "GitHub user whose public repositories are listed",
			Category:    "GitHub",
			Aliases:     []string{"u"},
			Value:       types.DefaultGitHubOwner.String(),
			Destination: &x.owner,
			Sources:     cli.EnvVars("FOLIO_GITHUB_USER"),
		},
		&cli.BoolFlag{
			Name:        "github-detect-user",
			Usage:       "Take the GitHub user from the origin remote of the git repository in the working directory",
			Category:    "GitHub",
			Destination: &x.detectOwner,
			Sources:     cli.EnvVars("FOLIO_GITHUB_DETECT_USER"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("FOLIO_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for authenticated requests",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("FOLIO_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("FOLIO_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("FOLIO_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("FOLIO_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) Owner() types.GitHubOwner {
	return types.GitHubOwner(x.owner)
}

func (x *GitHub) SetOwner(owner types.GitHubOwner) {
	x.owner = owner.String()
}

func (x *GitHub) DetectOwner() bool {
	return x.detectOwner
}

// New builds the API client. App credentials take precedence over a token.
func (x *GitHub) New(httpClient *http.Client) (*github.Client, error) {
	options := []github.Option{
		github.WithHTTPClient(httpClient),
	}
	if x.apiURL != "" {
		options = append(options, github.WithBaseURL(x.apiURL))
	}

	switch {
	case x.appID != 0 || x.privateKey != "":
		options = append(options, github.WithApp(x.appID, x.installID, x.privateKey))
	case x.token != "":
		options = append(options, github.WithToken(x.token))
	}

	return github.New(options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("User", x.owner),
		slog.Bool("DetectUser", x.detectOwner),
		slog.String("APIURL", x.apiURL),
		slog.Int("token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
