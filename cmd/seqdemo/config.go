package main

import (
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/validation"
	"github.com/kbukum/seqkit/version"
)

const serviceName = "seqdemo"

// DemoConfig is the configuration of the seqdemo command.
type DemoConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Observability        ObservabilityConfig `yaml:"observability" mapstructure:"observability" json:"observability"`
	Scenarios            []string            `yaml:"scenarios" mapstructure:"scenarios" json:"scenarios" validate:"dive,oneof=doubling halving grouping terminals"`
}

// ObservabilityConfig toggles the OTLP exporters.
type ObservabilityConfig struct {
	Metrics    bool    `yaml:"metrics" mapstructure:"metrics" json:"metrics"`
	Tracing    bool    `yaml:"tracing" mapstructure:"tracing" json:"tracing"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" json:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure" json:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" json:"sample_rate" validate:"min=0,max=1"`
}

// ApplyDefaults fills unset fields.
func (c *DemoConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Version == "" {
		c.Version = version.Get().String()
	}
	c.ServiceConfig.ApplyDefaults()
	if len(c.Scenarios) == 0 {
		c.Scenarios = []string{scenarioDoubling, scenarioHalving, scenarioGrouping, scenarioTerminals}
	}
	if c.Observability.Endpoint == "" && (c.Observability.Metrics || c.Observability.Tracing) {
		c.Observability.Endpoint = "localhost:4318"
	}
}

// Validate checks the whole configuration.
func (c *DemoConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}
