package content

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const fileScheme = "file://"

// File reads the content from the local filesystem. Lookup failures are
// reported with the status codes a static file server would use.
type File struct {
	location types.ContentLocation
	path     string
}

var _ interfaces.ContentSource = (*File)(nil)

func NewFile(path types.ContentLocation) *File {
	return &File{location: path, path: path.String()}
}

// NewFileURL reads the path of a file:// URL. Location keeps the URL as given.
func NewFileURL(location types.ContentLocation) *File {
	path := location.String()
	if len(path) >= len(fileScheme) && strings.EqualFold(path[:len(fileScheme)], fileScheme) {
		path = path[len(fileScheme):]
	}
	return &File{location: location, path: path}
}

func (x *File) Location() types.ContentLocation {
	return x.location
}

func (x *File) Fetch(ctx context.Context) (string, error) {
	raw, err := os.ReadFile(filepath.Clean(x.path))
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return "", goerr.Wrap(statusError(http.StatusNotFound), "content file not found", goerr.V("path", x.path))
		case errors.Is(err, fs.ErrPermission):
			return "", goerr.Wrap(statusError(http.StatusForbidden), "content file not readable", goerr.V("path", x.path))
		default:
			return "", goerr.Wrap(types.ErrTransport, "failed to read content file",
				goerr.V("path", x.path),
				goerr.V("cause", err.Error()),
			)
		}
	}

	return string(raw), nil
}

func statusError(code int) *types.StatusError {
	return &types.StatusError{Code: code, Text: http.StatusText(code)}
}
