package content

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/infra"
	"github.com/m-mizutani/folio/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// HTTP retrieves the content with a plain GET request.
type HTTP struct {
	url        types.ContentLocation
	httpClient infra.HTTPClient
}

var _ interfaces.ContentSource = (*HTTP)(nil)

func NewHTTP(url types.ContentLocation, httpClient infra.HTTPClient) (*HTTP, error) {
	if httpClient == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "http client is required", goerr.V("url", url))
	}
	return &HTTP{url: url, httpClient: httpClient}, nil
}

func (x *HTTP) Location() types.ContentLocation {
	return x.url
}

func (x *HTTP) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, x.url.String(), nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create request for content", goerr.V("url", x.url))
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(types.ErrTransport, "failed to fetch content",
			goerr.V("url", x.url),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", goerr.Wrap(&types.StatusError{
			Code: resp.StatusCode,
			Text: statusText(resp),
		}, "unexpected status of content", goerr.V("url", x.url))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(types.ErrTransport, "failed to read content body",
			goerr.V("url", x.url),
			goerr.V("cause", err.Error()),
		)
	}

	return string(body), nil
}

// statusText prefers the reason phrase sent by the server.
func statusText(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
