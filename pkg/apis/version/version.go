// Package version binds version.aspx, which reports the API version and
// licence.
package version

import (
	"context"

	"github.com/travigo/bart/pkg/bart"
)

var Endpoint = bart.Endpoint{Script: "version", Command: "ver"}

type Version struct {
	APIVersion string       `json:"apiVersion" groups:"basic"`
	Copyright  string       `json:"copyright" groups:"basic"`
	License    string       `json:"license"`
	Message    bart.Message `json:"message"`
}

func URL(c *bart.Client) string {
	return c.URL(Endpoint, nil)
}

func Get(ctx context.Context, c *bart.Client) (*Version, error) {
	return bart.Fetch[Version](ctx, c, Endpoint, nil)
}
