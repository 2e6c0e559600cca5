// Package config loads the client settings from defaults, an optional YAML
// file, BART_* environment variables and command line flags, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/util"
	"gopkg.in/yaml.v3"
)

const EnvironmentPrefix = "BART_"

type Config struct {
	APIKey        string        `yaml:"api_key"`
	BaseURL       string        `yaml:"base_url" validate:"required,url"`
	UserAgent     string        `yaml:"user_agent" validate:"required"`
	Timeout       time.Duration `yaml:"timeout" validate:"gt=0"`
	Retries       uint64        `yaml:"retries" validate:"lte=10"`
	RetryInterval time.Duration `yaml:"retry_interval" validate:"gte=0"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	Debug  bool   `yaml:"debug"`
}

func Default() Config {
	return Config{
		APIKey:        bart.PublicKey,
		BaseURL:       bart.DefaultBaseURL,
		UserAgent:     bart.DefaultUserAgent,
		Timeout:       bart.DefaultTimeout,
		RetryInterval: bart.DefaultRetryInterval,
		Log: LogConfig{
			Format: "console",
		},
	}
}

// Load reads the YAML file at path on top of the defaults, when path isn't
// empty, then applies the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.ApplyEnvironment(util.GetEnvironmentVariables(EnvironmentPrefix)); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// ApplyEnvironment overrides settings from variables keyed without the BART_
// prefix.
func (c *Config) ApplyEnvironment(env map[string]string) error {
	if env["API_KEY"] != "" {
		c.APIKey = env["API_KEY"]
	}
	if env["API_BASE_URL"] != "" {
		c.BaseURL = env["API_BASE_URL"]
	}
	if env["USER_AGENT"] != "" {
		c.UserAgent = env["USER_AGENT"]
	}

	if env["TIMEOUT"] != "" {
		timeout, err := time.ParseDuration(env["TIMEOUT"])
		if err != nil {
			return fmt.Errorf("invalid %sTIMEOUT: %w", EnvironmentPrefix, err)
		}
		c.Timeout = timeout
	}

	if env["RETRIES"] != "" {
		retries, err := strconv.ParseUint(env["RETRIES"], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sRETRIES: %w", EnvironmentPrefix, err)
		}
		c.Retries = retries
	}

	if env["RETRY_INTERVAL"] != "" {
		interval, err := time.ParseDuration(env["RETRY_INTERVAL"])
		if err != nil {
			return fmt.Errorf("invalid %sRETRY_INTERVAL: %w", EnvironmentPrefix, err)
		}
		c.RetryInterval = interval
	}

	if env["LOG_FORMAT"] == "JSON" {
		c.Log.Format = "json"
	}
	if env["DEBUG"] == "YES" {
		c.Log.Debug = true
	}

	return nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func (c Config) NewClient() *bart.Client {
	return bart.NewClient(
		bart.WithKey(c.APIKey),
		bart.WithBaseURL(c.BaseURL),
		bart.WithUserAgent(c.UserAgent),
		bart.WithTimeout(c.Timeout),
		bart.WithRetries(c.Retries),
		bart.WithRetryInterval(c.RetryInterval),
	)
}
