package config

import (
	"github.com/travigo/bart/pkg/bart"
	"github.com/urfave/cli/v2"
)

// Flags are the global flags that override file and environment settings.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to a YAML config file",
			EnvVars: []string{EnvironmentPrefix + "CONFIG"},
		},
		&cli.StringFlag{
			Name:  "key",
			Usage: "BART API key, defaults to the public key",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "BART API base URL",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "HTTP request timeout",
		},
		&cli.Uint64Flag{
			Name:  "retries",
			Usage: "number of retries for failed requests",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
}

// FromContext loads the config named by --config and applies the flags that
// were set on the command line.
func FromContext(c *cli.Context) (Config, error) {
	cfg, err := Load(c.String("config"))
	if err != nil {
		return Config{}, err
	}

	if c.IsSet("key") {
		cfg.APIKey = c.String("key")
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("retries") {
		cfg.Retries = c.Uint64("retries")
	}
	if c.Bool("debug") {
		cfg.Log.Debug = true
	}

	return cfg, cfg.Validate()
}

// NewClientFromContext builds a client from the config and flags of c.
func NewClientFromContext(c *cli.Context) (*bart.Client, error) {
	cfg, err := FromContext(c)
	if err != nil {
		return nil, err
	}

	return cfg.NewClient(), nil
}
