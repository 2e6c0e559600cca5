package routes

import (
	"strconv"
	"time"

	"github.com/travigo/bart/pkg/config"
	"github.com/travigo/bart/pkg/datetime"
	"github.com/travigo/bart/pkg/output"
	"github.com/urfave/cli/v2"
)

// SelectorFlags choose the schedule for route and schedule commands.
func SelectorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "schedule",
			Usage: "schedule number",
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "MM/DD/YYYY or today",
		},
	}
}

// SelectorFromContext reads the flags added by SelectorFlags.
func SelectorFromContext(c *cli.Context) (Selector, error) {
	selector := CurrentSchedule()

	if c.IsSet("schedule") {
		selector = Schedule(c.Int("schedule"))
	}

	if c.IsSet("date") {
		if c.IsSet("schedule") {
			return Selector{}, cli.Exit("--schedule and --date can't be combined", 1)
		}

		if value := c.String("date"); value == today {
			selector = Today()
		} else {
			date, err := datetime.ParseDate(value)
			if err != nil {
				return Selector{}, err
			}
			selector = OnDate(date.In(time.UTC))
		}
	}

	return selector, nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "routes",
		Usage: "Routes and the stations they serve",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list the routes of a schedule",
				Flags: SelectorFlags(),
				Action: func(c *cli.Context) error {
					selector, err := SelectorFromContext(c)
					if err != nil {
						return err
					}

					client, err := config.NewClientFromContext(c)
					if err != nil {
						return err
					}

					response, err := List(c.Context, client, selector)
					if err != nil {
						return err
					}

					return output.Print(c, response)
				},
			},
			{
				Name:      "info",
				Usage:     "stations served by a route",
				ArgsUsage: "<route number>",
				Flags:     SelectorFlags(),
				Action: func(c *cli.Context) error {
					route, err := strconv.Atoi(c.Args().First())
					if err != nil {
						return cli.Exit("a route number is required", 1)
					}

					selector, err := SelectorFromContext(c)
					if err != nil {
						return err
					}

					client, err := config.NewClientFromContext(c)
					if err != nil {
						return err
					}

					response, err := Info(c.Context, client, route, selector)
					if err != nil {
						return err
					}

					return output.Print(c, response)
				},
			},
		},
	}
}
