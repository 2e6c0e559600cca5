package advisories

import (
	"github.com/travigo/bart/pkg/config"
	"github.com/travigo/bart/pkg/output"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "advisories",
		Usage: "Service advisories, train count and elevator status",
		Subcommands: []*cli.Command{
			{
				Name:  "bsa",
				Usage: "current service advisories",
				Action: func(c *cli.Context) error {
					client, err := config.NewClientFromContext(c)
					if err != nil {
						return err
					}

					response, err := BSA(c.Context, client)
					if err != nil {
						return err
					}

					return output.Print(c, response)
				},
			},
			{
				Name:  "count",
				Usage: "number of trains currently in service",
				Action: func(c *cli.Context) error {
					client, err := config.NewClientFromContext(c)
					if err != nil {
						return err
					}

					response, err := Count(c.Context, client)
					if err != nil {
						return err
					}

					return output.Print(c, response)
				},
			},
			{
				Name:  "elev",
				Usage: "elevators out of service",
				Action: func(c *cli.Context) error {
					client, err := config.NewClientFromContext(c)
					if err != nil {
						return err
					}

					response, err := Elevators(c.Context, client)
					if err != nil {
						return err
					}

					return output.Print(c, response)
				},
			},
		},
	}
}
