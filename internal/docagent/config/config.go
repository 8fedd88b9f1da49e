package config

import (
	"github.com/hibiki-ai/docagent/internal/docagent/options"
)

// Config is the running configuration structure of the docagent service.
type Config struct {
	*options.Options
}

// CreateConfigFromOptions creates a running configuration instance based
// on the given options.
func CreateConfigFromOptions(opts *options.Options) (*Config, error) {
	return &Config{opts}, nil
}
