// Package options defines the configuration surface of the docagent
// frontends. All values are environment-sourced through viper, with flags as
// overrides; the only validation performed is presence.
package options

import (
	"github.com/hibiki-ai/docagent/internal/pkg/json"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options is the full option set shared by both frontends.
type Options struct {
	AzureOptions   *AzureOptions   `json:"azure"   mapstructure:"azure"`
	MCPOptions     *MCPOptions     `json:"mcp"     mapstructure:"mcp"`
	ServingOptions *ServingOptions `json:"serving" mapstructure:"serving"`
}

// NewOptions builds the option set from the process environment.
func NewOptions() *Options {
	v := viper.New()
	v.AutomaticEnv()

	return &Options{
		AzureOptions:   NewAzureOptions(v),
		MCPOptions:     NewMCPOptions(v),
		ServingOptions: NewServingOptions(v),
	}
}

// AddFlags adds all option flags to the given flag set.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.AzureOptions.AddFlags(fs)
	o.MCPOptions.AddFlags(fs)
	o.ServingOptions.AddFlags(fs)
}

// Validate checks all option groups, collecting every error rather than
// stopping at the first.
func (o *Options) Validate() []error {
	var errs []error
	errs = append(errs, o.AzureOptions.Validate()...)
	errs = append(errs, o.MCPOptions.Validate()...)
	errs = append(errs, o.ServingOptions.Validate()...)
	return errs
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}
