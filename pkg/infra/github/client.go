package github

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/model"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Client lists public repositories through the GitHub REST API. Requests are
// anonymous unless a token or GitHub App installation is configured.
type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	httpClient *http.Client
	baseURL    string
	token      types.GitHubToken

	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey
}

type Option func(*config)

// WithBaseURL points the client to another API endpoint, e.g. GitHub
// Enterprise or a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithApp authenticates as a GitHub App installation.
func WithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, privateKey types.GitHubAppPrivateKey) Option {
	return func(cfg *config) {
		cfg.appID = appID
		cfg.installID = installID
		cfg.privateKey = privateKey
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		httpClient: &http.Client{},
	}
	for _, opt := range options {
		opt(cfg)
	}

	httpClient, err := buildHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		base := cfg.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL))
		}
		client.BaseURL = u
	}

	return &Client{client: client}, nil
}

func buildHTTPClient(cfg *config) (*http.Client, error) {
	tr := cfg.httpClient.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}

	switch {
	case cfg.appID != 0 || cfg.privateKey != "":
		if cfg.appID == 0 || cfg.installID == 0 || cfg.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App requires app ID, installation ID and private key")
		}
		itr, err := ghinstallation.New(tr, int64(cfg.appID), int64(cfg.installID), []byte(cfg.privateKey))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport",
				goerr.V("appID", cfg.appID),
				goerr.V("installID", cfg.installID),
			)
		}
		tr = itr

	case cfg.token != "":
		tr = &tokenTransport{base: tr, token: cfg.token}
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.httpClient.Timeout,
	}, nil
}

type tokenTransport struct {
	base  http.RoundTripper
	token types.GitHubToken
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+string(x.token))
	return x.base.RoundTrip(clone)
}

// ListUserRepos sends GET /users/{owner}/repos and converts the entries.
func (x *Client) ListUserRepos(ctx context.Context, input *interfaces.ListUserReposInput) ([]*model.RepositorySummary, error) {
	if input == nil || input.Owner == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "owner is required")
	}

	opt := &github.RepositoryListOptions{
		Sort: input.Sort,
		ListOptions: github.ListOptions{
			PerPage: input.PerPage,
		},
	}

	logging.From(ctx).Debug("Sending list repositories request",
		slog.Any("owner", input.Owner),
		slog.String("sort", input.Sort),
		slog.Int("per_page", input.PerPage),
	)

	repos, resp, err := x.client.Repositories.List(ctx, input.Owner.String(), opt)
	if err != nil {
		return nil, classifyError(err, resp, input.Owner)
	}

	result := make([]*model.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		result = append(result, toSummary(repo))
	}

	logging.From(ctx).Debug("Listed repositories",
		slog.Any("owner", input.Owner),
		slog.Int("count", len(result)),
	)

	return result, nil
}

func classifyError(err error, resp *github.Response, owner types.GitHubOwner) error {
	if resp != nil && resp.Response != nil {
		code := resp.StatusCode
		if code < 200 || code > 299 {
			return goerr.Wrap(&types.StatusError{
				Code:     code,
				Text:     statusText(resp.Response),
				Detailed: true,
			}, "unexpected status of repository listing",
				goerr.V("owner", owner),
				goerr.V("cause", err.Error()),
			)
		}

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			return goerr.Wrap(types.ErrParse, "failed to decode repository listing",
				goerr.V("owner", owner),
				goerr.V("cause", err.Error()),
			)
		}
	}

	return goerr.Wrap(types.ErrTransport, "failed to list repositories",
		goerr.V("owner", owner),
		goerr.V("cause", err.Error()),
	)
}

func statusText(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func toSummary(repo *github.Repository) *model.RepositorySummary {
	summary := &model.RepositorySummary{
		Name:            repo.GetName(),
		Fork:            repo.GetFork(),
		StargazersCount: repo.GetStargazersCount(),
		HTMLURL:         repo.GetHTMLURL(),
	}
	if repo.Description != nil {
		desc := *repo.Description
		summary.Description = &desc
	}
	return summary
}
