package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/bart/pkg/apis/advisories"
	"github.com/travigo/bart/pkg/apis/etd"
	"github.com/travigo/bart/pkg/apis/routes"
	"github.com/travigo/bart/pkg/apis/schedule"
	"github.com/travigo/bart/pkg/apis/stations"
	"github.com/travigo/bart/pkg/apis/version"
	"github.com/travigo/bart/pkg/config"
	"github.com/travigo/bart/pkg/gtfsrt"
	"github.com/travigo/bart/pkg/output"
	"github.com/urfave/cli/v2"
)

func main() {
	logging := config.Default().Log
	if os.Getenv(config.EnvironmentPrefix+"LOG_FORMAT") == "JSON" {
		logging.Format = "json"
	}
	logging.Debug = os.Getenv(config.EnvironmentPrefix+"DEBUG") == "YES"
	logging.SetupLogging(os.Stderr)

	gtfsrt.Register()

	app := &cli.App{
		Name:        "bart",
		Usage:       "Query the BART public API",
		Description: "Typed client for api.bart.gov: departures, stations, routes, schedules and advisories",

		Flags: append(config.Flags(), &cli.StringFlag{
			Name:    "format",
			Aliases: []string{"o"},
			Usage:   "output format: " + strings.Join(output.Formats(), ", "),
			Value:   output.FormatPretty,
		}),

		Before: func(c *cli.Context) error {
			cfg, err := config.FromContext(c)
			if err != nil {
				return err
			}

			cfg.Log.SetupLogging(os.Stderr)
			return nil
		},

		Commands: []*cli.Command{
			version.RegisterCLI(),
			advisories.RegisterCLI(),
			stations.RegisterCLI(),
			etd.RegisterCLI(),
			routes.RegisterCLI(),
			schedule.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
