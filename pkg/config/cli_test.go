package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runWithFlags(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	var cfg Config
	var cfgErr error

	app := &cli.App{
		Name:  "bart",
		Flags: Flags(),
		Commands: []*cli.Command{
			{
				Name: "check",
				Action: func(c *cli.Context) error {
					cfg, cfgErr = FromContext(c)
					return nil
				},
			},
		},
	}

	require.NoError(t, app.Run(append([]string{"bart"}, args...)))
	return cfg, cfgErr
}

func TestFromContext(t *testing.T) {
	t.Setenv("BART_API_KEY", "ENV-KEY")

	cfg, err := runWithFlags(t, "--key", "FLAG-KEY", "--timeout", "4s", "--retries", "3", "--debug", "check")
	require.NoError(t, err)

	assert.Equal(t, "FLAG-KEY", cfg.APIKey)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
	assert.EqualValues(t, 3, cfg.Retries)
	assert.True(t, cfg.Log.Debug)

	cfg, err = runWithFlags(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "ENV-KEY", cfg.APIKey)
	assert.False(t, cfg.Log.Debug)
}

func TestFromContextInvalid(t *testing.T) {
	_, err := runWithFlags(t, "--base-url", "nope", "check")
	assert.Error(t, err)

	_, err = runWithFlags(t, "--retries", "50", "check")
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	var buffer bytes.Buffer
	LogConfig{Format: "json", Debug: true}.SetupLogging(&buffer)

	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())
	log.Debug().Str("endpoint", "etd.aspx?cmd=etd").Msg("request")
	assert.Contains(t, buffer.String(), `"endpoint":"etd.aspx?cmd=etd"`)

	buffer.Reset()
	LogConfig{Format: "console"}.SetupLogging(&buffer)

	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())
	log.Debug().Msg("hidden")
	assert.Empty(t, buffer.String())
}
