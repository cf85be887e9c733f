package usecase

import (
	"bytes"
	"errors"
	"html"
	"html/template"

	"github.com/m-mizutani/folio/pkg/domain/model"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	textLoading        = "Loading content..."
	textNoDescription  = "No description"
	textNoRepositories = "This user has no public repositories."
)

var (
	loadingTmpl = template.Must(template.New("loading").Parse(
		`<p class="text-center text-gray-500">{{.}}</p>`))

	contentWarningTmpl = template.Must(template.New("content_warning").Parse(`
<div class="bg-yellow-100 border-l-4 border-yellow-500 text-yellow-700 p-4">
  <p class="font-bold">⚠️ Content not available</p>
  <p>Try editing the file: <code>{{.Location}}</code></p>
  <p>Error: {{.Message}}</p>
</div>`))

	noReposTmpl = template.Must(template.New("no_repos").Parse(
		`<p class="text-center">{{.}}</p>`))

	repoCardsTmpl = template.Must(template.New("repo_cards").Parse(`
{{- range .Repos}}
<div class="bg-white p-6 rounded-lg shadow-md hover:shadow-lg transition border">
  <h3 class="text-xl font-bold text-blue-600">{{.Name}}</h3>
  <p class="mt-2 text-gray-700">{{.DescriptionOr $.NoDescription}}</p>
  <div class="mt-4 flex justify-between text-sm text-gray-500">
    <span>⭐ {{.Stars}}</span>
    <a href="{{.HTMLURL}}" target="_blank" class="text-blue-500 hover:underline">View on GitHub</a>
  </div>
</div>
{{- end}}`))

	repoErrorTmpl = template.Must(template.New("repo_error").Parse(`
<div class="bg-red-100 border-l-4 border-red-500 text-red-700 p-4">
  <p class="font-bold">❌ Error loading projects</p>
  <p>User: {{.Owner}}</p>
  <p>Error: {{.Message}}</p>
</div>`))
)

func execFragment(tmpl *template.Template, data any) (model.Fragment, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render fragment", goerr.V("template", tmpl.Name()))
	}
	return model.Fragment(buf.String()), nil
}

// mustFragment is used for the placeholder and error blocks, which have no
// better fallback than their escaped text.
func mustFragment(tmpl *template.Template, data any, fallback string) model.Fragment {
	fragment, err := execFragment(tmpl, data)
	if err != nil {
		return model.Fragment(html.EscapeString(fallback))
	}
	return fragment
}

func loadingFragment() model.Fragment {
	return mustFragment(loadingTmpl, textLoading, textLoading)
}

func contentWarningFragment(location types.ContentLocation, err error) model.Fragment {
	msg := userMessage(err)
	return mustFragment(contentWarningTmpl, struct {
		Location types.ContentLocation
		Message  string
	}{
		Location: location,
		Message:  msg,
	}, "Content not available: "+msg)
}

func noReposFragment() model.Fragment {
	return mustFragment(noReposTmpl, textNoRepositories, textNoRepositories)
}

func repoCardsFragment(repos []*model.RepositorySummary) (model.Fragment, error) {
	return execFragment(repoCardsTmpl, struct {
		Repos         []*model.RepositorySummary
		NoDescription string
	}{
		Repos:         repos,
		NoDescription: textNoDescription,
	})
}

func repoErrorFragment(owner types.GitHubOwner, err error) model.Fragment {
	msg := userMessage(err)
	return mustFragment(repoErrorTmpl, struct {
		Owner   types.GitHubOwner
		Message string
	}{
		Owner:   owner,
		Message: msg,
	}, "Error loading projects: "+msg)
}

// userMessage is the short text shown to visitors. Details stay in the log.
func userMessage(err error) string {
	var statusErr *types.StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.Is(err, types.ErrEmptyContent):
		return "The file is empty"
	case errors.Is(err, types.ErrParse):
		return "Malformed response"
	case errors.Is(err, types.ErrTransport):
		return "Failed to fetch"
	case errors.Is(err, types.ErrInvalidOption):
		return "Not configured"
	default:
		return "Unexpected error"
	}
}
