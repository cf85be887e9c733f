package infra

import (
	"net/http"

	"github.com/m-mizutani/folio/pkg/domain/interfaces"
)

type Clients struct {
	content interfaces.ContentSource
	github  interfaces.GitHub
	storage interfaces.Storage
}

// HTTPClient is the subset of *http.Client used by the content sources.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Content() interfaces.ContentSource {
	return x.content
}
func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Storage() interfaces.Storage {
	return x.storage
}

func WithContent(source interfaces.ContentSource) Option {
	return func(x *Clients) {
		x.content = source
	}
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithStorage(client interfaces.Storage) Option {
	return func(x *Clients) {
		x.storage = client
	}
}
