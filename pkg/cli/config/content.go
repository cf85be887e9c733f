package config

import (
	"log/slog"

	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/infra"
	"github.com/m-mizutani/folio/pkg/infra/content"
	"github.com/urfave/cli/v3"
)

type Content struct {
	location string
}

func (x *Content) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "content",
			Usage:       "Markdown file of the about section, a path or an http(s) URL",
			Category:    "Content",
			Aliases:     []string{"c"},
			Value:       types.DefaultContentLocation.String(),
			Destination: &x.location,
			Sources:     cli.EnvVars("FOLIO_CONTENT"),
		},
	}
}

func (x *Content) New(httpClient infra.HTTPClient) (interfaces.ContentSource, error) {
	return content.New(types.ContentLocation(x.location), httpClient)
}

func (x Content) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Location", x.location),
	)
}
