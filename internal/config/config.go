package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Format of the legacy Vimeo metadata endpoint
type Format string

const (
	PHP  Format = "php"
	JSON Format = "json"
)

type Config struct {
	// Running localy or not
	Debug bool `env:"DEBUG" envDefault:"false"`

	// YouTube locations
	YouTubeBase      string `env:"YOUTUBE_BASE_URL" envDefault:"http://www.youtube.com"`
	YouTubeImageBase string `env:"YOUTUBE_IMAGE_BASE_URL" envDefault:"http://i.ytimg.com/vi"`

	// Vimeo locations
	VimeoPlayerBase string `env:"VIMEO_PLAYER_BASE_URL" envDefault:"http://player.vimeo.com/video"`
	VimeoAPIBase    string `env:"VIMEO_API_BASE_URL" envDefault:"http://vimeo.com/api/v2/video"`
	VimeoAPIFormat  Format `env:"VIMEO_API_FORMAT" envDefault:"php"`

	// Outbound metadata fetch
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	MaxRetries  int           `env:"VIMEO_MAX_RETRIES" envDefault:"1"`
	RetryDelay  time.Duration `env:"VIMEO_RETRY_DELAY" envDefault:"1s"`

	// Requests per minute to the metadata endpoint, 0 is unlimited
	RateLimit int `env:"VIMEO_RATE_LIMIT" envDefault:"0"`
	RateBurst int `env:"VIMEO_RATE_BURST" envDefault:"1"`
}

// New parses the config from the environment
func New() (*Config, error) {

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse the config; %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the config with every field set to its default,
// ignoring the environment.
func Default() *Config {

	var cfg Config
	opts := env.Options{Environment: map[string]string{}}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		// The defaults are constants, this can only be a programming error
		panic(fmt.Sprintf("invalid config defaults; %v", err))
	}

	return &cfg
}

// Validate checks the config values
func (c *Config) Validate() error {

	bases := map[string]string{
		"YOUTUBE_BASE_URL":       c.YouTubeBase,
		"YOUTUBE_IMAGE_BASE_URL": c.YouTubeImageBase,
		"VIMEO_PLAYER_BASE_URL":  c.VimeoPlayerBase,
		"VIMEO_API_BASE_URL":     c.VimeoAPIBase,
	}

	var errs []error
	for name, base := range bases {
		if base == "" {
			errs = append(errs, fmt.Errorf("empty %s", name))
			continue
		}
		if _, err := url.Parse(base); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s; %w", name, err))
		}
	}

	switch c.VimeoAPIFormat {
	case PHP, JSON:
	default:
		errs = append(errs, fmt.Errorf("unknown VIMEO_API_FORMAT %q", c.VimeoAPIFormat))
	}

	if c.HTTPTimeout < 0 {
		errs = append(errs, errors.New("negative HTTP_TIMEOUT"))
	}

	if c.RetryDelay < 0 {
		errs = append(errs, errors.New("negative VIMEO_RETRY_DELAY"))
	}

	if c.RateLimit < 0 || c.RateBurst < 0 {
		errs = append(errs, errors.New("negative VIMEO_RATE_LIMIT or VIMEO_RATE_BURST"))
	}

	return errors.Join(errs...)
}
