package main

import (
	"github.com/kbukum/cerealpipe/config"
	"github.com/kbukum/cerealpipe/fetch"
)

const serviceName = "cerealpipe"

// TelemetryConfig controls OTLP export. Telemetry stays off unless an
// endpoint is configured, so a plain run only talks to the dataset host.
type TelemetryConfig struct {
	// Endpoint is the OTLP HTTP collector host:port, e.g. "localhost:4318".
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows plain HTTP export (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// Enabled reports whether an OTLP endpoint was configured.
func (c *TelemetryConfig) Enabled() bool { return c.Endpoint != "" }

// Config is the full application configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Source    fetch.Config    `yaml:"source" mapstructure:"source"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults applies defaults for all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Source.ApplyDefaults()
	if c.Telemetry.SampleRate <= 0 {
		c.Telemetry.SampleRate = 1.0
	}
}

// Validate validates all sections.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return c.Source.Validate()
}
