package etd

import (
	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/config"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/output"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "etd",
		Usage: "Real time departure estimates",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "station",
				Usage: "station abbreviation or name, repeat for several stations (default all stations)",
			},
			&cli.StringFlag{
				Name:  "direction",
				Usage: "only trains heading n(orth) or s(outh)",
			},
			&cli.IntFlag{
				Name:  "platform",
				Usage: "only trains at platform 1-4",
			},
			&cli.StringFlag{
				Name:  "filter",
				Usage: "expression selecting estimates, e.g. 'Minutes <= 10 && BikeFlag'",
			},
		},
		Action: func(c *cli.Context) error {
			client, err := config.NewClientFromContext(c)
			if err != nil {
				return err
			}

			response, err := fetch(c, client)
			if err != nil {
				return err
			}

			if expression := c.String("filter"); expression != "" {
				response, err = Filter(response, expression)
				if err != nil {
					return err
				}
			}

			return output.Print(c, response)
		},
	}
}

func fetch(c *cli.Context, client *bart.Client) (*Response, error) {
	var stations []constants.Station
	for _, arg := range c.StringSlice("station") {
		station, err := constants.ParseStation(arg)
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}

	options := AllStations()
	if len(stations) > 0 {
		options = ForStation(stations[0])
	}

	if c.IsSet("direction") {
		direction, err := constants.ParseDirection(c.String("direction"))
		if err != nil {
			return nil, err
		}
		options = options.WithDirection(direction)
	}
	if c.IsSet("platform") {
		options = options.WithPlatform(c.Int("platform"))
	}

	if len(stations) > 1 {
		if options.Direction != "" || options.Platform != 0 {
			return nil, cli.Exit("--direction and --platform need a single --station", 1)
		}
		return ForStations(c.Context, client, stations...)
	}

	return Get(c.Context, client, options)
}
