package content

import (
	"strings"

	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/infra"
	"github.com/m-mizutani/goerr/v2"
)

// New returns an HTTP source for http(s) URLs and a file source otherwise.
func New(location types.ContentLocation, httpClient infra.HTTPClient) (interfaces.ContentSource, error) {
	loc := strings.TrimSpace(location.String())
	if loc == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "content location is empty")
	}

	lower := strings.ToLower(loc)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return NewHTTP(types.ContentLocation(loc), httpClient)
	case strings.HasPrefix(lower, fileScheme):
		return NewFileURL(types.ContentLocation(loc)), nil
	default:
		return NewFile(types.ContentLocation(loc)), nil
	}
}
