package stations

import (
	"github.com/travigo/bart/pkg/config"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/output"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "Station list, details and access information",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all stations",
				Action: func(c *cli.Context) error {
					client, err := config.NewClientFromContext(c)
					if err != nil {
						return err
					}

					response, err := List(c.Context, client)
					if err != nil {
						return err
					}

					return output.Print(c, response)
				},
			},
			{
				Name:      "info",
				Usage:     "details for one or more stations",
				ArgsUsage: "<station> [station...]",
				Action: func(c *cli.Context) error {
					stations, err := stationArgs(c)
					if err != nil {
						return err
					}

					client, err := config.NewClientFromContext(c)
					if err != nil {
						return err
					}

					responses, err := InfoMany(c.Context, client, stations...)
					if err != nil {
						return err
					}

					if len(responses) == 1 {
						return output.Print(c, responses[0])
					}
					return output.Print(c, responses)
				},
			},
			{
				Name:      "access",
				Usage:     "access and parking information for a station",
				ArgsUsage: "<station>",
				Action: func(c *cli.Context) error {
					stations, err := stationArgs(c)
					if err != nil {
						return err
					}

					client, err := config.NewClientFromContext(c)
					if err != nil {
						return err
					}

					response, err := Access(c.Context, client, stations[0])
					if err != nil {
						return err
					}

					return output.Print(c, response)
				},
			},
		},
	}
}

// stationArgs parses the positional arguments as station abbreviations or
// names.
func stationArgs(c *cli.Context) ([]constants.Station, error) {
	if c.NArg() == 0 {
		return nil, cli.Exit("at least one station is required", 1)
	}

	stations := make([]constants.Station, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		station, err := constants.ParseStation(arg)
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}

	return stations, nil
}
