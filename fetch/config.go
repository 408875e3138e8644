package fetch

import (
	"time"

	"github.com/kbukum/cerealpipe/validation"
)

// DefaultURL is the canonical cereal dataset location.
const DefaultURL = "https://docs.dagster.io/assets/cereal.csv"

// DefaultTimeout bounds a single fetch including body read.
const DefaultTimeout = 30 * time.Second

// Config configures the dataset loader.
type Config struct {
	// URL is the dataset source location.
	URL string `yaml:"url" mapstructure:"url" validate:"required,url"`
	// Timeout bounds the whole fetch, including reading the body.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// UserAgent is sent with the request.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent" validate:"max=128"`
}

// ApplyDefaults applies default values to the loader configuration.
func (c *Config) ApplyDefaults() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = "cerealpipe"
	}
}

// Validate validates the loader configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
