package config_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/folio/pkg/cli/config"
	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

// parse runs flags through a throwaway command so that defaults and env
// sources are applied to the config destinations.
func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestGitHubFlags(t *testing.T) {
	var cfg config.GitHub
	names := flagNames(cfg.Flags())

	for _, name := range []string{
		"github-user",
		"github-detect-user",
		"github-api-url",
		"github-token",
		"github-app-id",
		"github-app-install-id",
		"github-app-private-key",
	} {
		gt.True(t, names[name])
	}
}

func TestGitHubDefaults(t *testing.T) {
	var cfg config.GitHub
	parse(t, cfg.Flags())

	gt.V(t, cfg.Owner()).Equal(types.DefaultGitHubOwner)
	gt.False(t, cfg.DetectOwner())
}

func TestGitHubNew(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/users/octocat/repos")
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var cfg config.GitHub
	parse(t, cfg.Flags(), "--github-user", "octocat", "--github-token", "test-token", "--github-api-url", srv.URL)

	client := gt.R1(cfg.New(srv.Client())).NoError(t)
	repos := gt.R1(client.ListUserRepos(context.Background(), &interfaces.ListUserReposInput{
		Owner:   cfg.Owner(),
		Sort:    "updated",
		PerPage: 6,
	})).NoError(t)
	gt.A(t, repos).Length(0)
}

func TestGitHubAppRequiresAllFields(t *testing.T) {
	var cfg config.GitHub
	parse(t, cfg.Flags(), "--github-app-id", "1")

	_, err := cfg.New(http.DefaultClient)
	gt.Error(t, err)
}

func TestContentDefaults(t *testing.T) {
	var cfg config.Content
	parse(t, cfg.Flags())

	src := gt.R1(cfg.New(http.DefaultClient)).NoError(t)
	gt.V(t, src.Location()).Equal(types.DefaultContentLocation)
}

func TestContentFromEnv(t *testing.T) {
	t.Setenv("FOLIO_CONTENT", "https://example.com/about.md")

	var cfg config.Content
	parse(t, cfg.Flags())

	src := gt.R1(cfg.New(http.DefaultClient)).NoError(t)
	gt.V(t, src.Location()).Equal(types.ContentLocation("https://example.com/about.md"))
}

func TestRenderDefaults(t *testing.T) {
	var cfg config.Render
	parse(t, cfg.Flags())

	gt.V(t, cfg.HTTPClient().Timeout).Equal(time.Duration(0))
	gt.A(t, gt.R1(cfg.Options()).NoError(t)).Length(3)
}

func TestRenderPerPageRange(t *testing.T) {
	for _, value := range []string{"0", "-3", "101"} {
		t.Run(value, func(t *testing.T) {
			var cfg config.Render
			parse(t, cfg.Flags(), "--per-page="+value)

			_, err := cfg.Options()
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}

	for _, value := range []string{"1", "100"} {
		t.Run(value, func(t *testing.T) {
			var cfg config.Render
			parse(t, cfg.Flags(), "--per-page="+value)

			gt.R1(cfg.Options()).NoError(t)
		})
	}
}

func TestRenderServeHTTPTimeoutDefault(t *testing.T) {
	cfg := config.NewRender(config.DefaultServeHTTPTimeout)
	parse(t, cfg.Flags())

	gt.V(t, cfg.HTTPClient().Timeout).Equal(30 * time.Second)
}

func TestRenderHTTPTimeout(t *testing.T) {
	var cfg config.Render
	parse(t, cfg.Flags(), "--http-timeout", "3s")

	gt.V(t, cfg.HTTPClient().Timeout).Equal(3 * time.Second)
}

func TestStorageDisabledByDefault(t *testing.T) {
	var cfg config.Storage
	parse(t, cfg.Flags())

	gt.False(t, cfg.Enabled())
	gt.V(t, cfg.Object()).Equal(types.GCSObject("index.html"))

	client, err := cfg.NewClient(context.Background())
	gt.NoError(t, err)
	gt.True(t, client == nil)
}
