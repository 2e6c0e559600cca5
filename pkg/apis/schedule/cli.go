package schedule

import (
	"context"

	"github.com/travigo/bart/pkg/apis/routes"
	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/config"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/datetime"
	"github.com/travigo/bart/pkg/output"
	"github.com/urfave/cli/v2"
)

func stationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Aliases:  []string{"orig"},
			Usage:    "origin station abbreviation or name",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Aliases:  []string{"dest"},
			Usage:    "destination station abbreviation or name",
			Required: true,
		},
	}
}

func tripFlags() []cli.Flag {
	defaults := DefaultTripOptions()

	return append(stationFlags(),
		&cli.StringFlag{
			Name:  "time",
			Usage: "time of day, e.g. 5:30 PM (default now)",
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "MM/DD/YYYY (default today)",
		},
		&cli.IntFlag{
			Name:  "before",
			Usage: "trips before the requested time",
			Value: defaults.Before,
		},
		&cli.IntFlag{
			Name:  "after",
			Usage: "trips after the requested time",
			Value: defaults.After,
		},
	)
}

func stationsFromContext(c *cli.Context) (constants.Station, constants.Station, error) {
	origin, err := constants.ParseStation(c.String("from"))
	if err != nil {
		return "", "", err
	}

	destination, err := constants.ParseStation(c.String("to"))
	if err != nil {
		return "", "", err
	}

	return origin, destination, nil
}

func optionsFromContext(c *cli.Context) (Options, error) {
	origin, destination, err := stationsFromContext(c)
	if err != nil {
		return Options{}, err
	}

	options := Options{
		Origin:      origin,
		Destination: destination,
		Trips: &TripOptions{
			Before: c.Int("before"),
			After:  c.Int("after"),
		},
	}

	if c.IsSet("time") {
		requested, err := datetime.ParseLocalTime(c.String("time"))
		if err != nil {
			return Options{}, err
		}
		options.Time = &requested
	}

	if c.IsSet("date") {
		date, err := datetime.ParseDate(c.String("date"))
		if err != nil {
			return Options{}, err
		}
		options.Date = &date
	}

	return options, nil
}

type planner func(context.Context, *bart.Client, Options) (*Response, error)

func plannerAction(plan planner) cli.ActionFunc {
	return func(c *cli.Context) error {
		options, err := optionsFromContext(c)
		if err != nil {
			return err
		}

		client, err := config.NewClientFromContext(c)
		if err != nil {
			return err
		}

		response, err := plan(c.Context, client, options)
		if err != nil {
			return err
		}

		return output.Print(c, response)
	}
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Trip planning and fares",
		Subcommands: []*cli.Command{
			{
				Name:   "arrive",
				Usage:  "trips arriving around a time",
				Flags:  tripFlags(),
				Action: plannerAction(Arrive),
			},
			{
				Name:   "depart",
				Usage:  "trips departing around a time",
				Flags:  tripFlags(),
				Action: plannerAction(Depart),
			},
			{
				Name:  "fare",
				Usage: "fares between two stations",
				Flags: append(stationFlags(), routes.SelectorFlags()...),
				Action: func(c *cli.Context) error {
					origin, destination, err := stationsFromContext(c)
					if err != nil {
						return err
					}

					selector, err := routes.SelectorFromContext(c)
					if err != nil {
						return err
					}

					client, err := config.NewClientFromContext(c)
					if err != nil {
						return err
					}

					response, err := Fare(c.Context, client, origin, destination, selector)
					if err != nil {
						return err
					}

					return output.Print(c, response)
				},
			},
		},
	}
}
