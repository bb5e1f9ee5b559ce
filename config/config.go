// Package config loads the scraper settings from an optional yaml file
// and the environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// Environment is development or production. Development enables debug
	// messages in verbose mode.
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`

	Dividend struct {
		// BaseURL is the site root the search and detail pages live under.
		BaseURL string `env:"DIVIDEND_BASE_URL" env-default:"http://www.dividend.com" yaml:"baseURL"`
	} `yaml:"dividend"`

	HTTP struct {
		UserAgent string `env:"HTTP_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36" yaml:"userAgent"` //nolint: lll
		// Timeout of a single request, 0 means no timeout.
		Timeout time.Duration `env:"HTTP_TIMEOUT" env-default:"0s" yaml:"timeout"`
	} `yaml:"http"`

	Browser struct {
		// Enabled renders detail pages in headless Chrome instead of
		// reading them over plain HTTP.
		Enabled bool          `env:"BROWSER_ENABLED" env-default:"false" yaml:"enabled"`
		Timeout time.Duration `env:"BROWSER_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"browser"`
}

// Load reads the yaml file at configPath, overridden by the environment.
// An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
