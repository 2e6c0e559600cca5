package version

import (
	"github.com/travigo/bart/pkg/config"
	"github.com/travigo/bart/pkg/output"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show the BART API version",
		Action: func(c *cli.Context) error {
			client, err := config.NewClientFromContext(c)
			if err != nil {
				return err
			}

			version, err := Get(c.Context, client)
			if err != nil {
				return err
			}

			return output.Print(c, version)
		},
	}
}
