package options

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hibiki-ai/docagent/internal/pkg/server"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ServingOptions holds the HTTP serving options for the service frontend.
type ServingOptions struct {
	BindAddress     string `json:"bind-address" mapstructure:"bind-address"`
	BindPort        int    `json:"bind-port"    mapstructure:"bind-port"`
	Mode            string `json:"mode"         mapstructure:"mode"`
	Healthz         bool   `json:"healthz"      mapstructure:"healthz"`
	EnableProfiling bool   `json:"profiling"    mapstructure:"profiling"`
}

// NewServingOptions creates a ServingOptions instance with defaults.
func NewServingOptions(v *viper.Viper) *ServingOptions {
	v.SetDefault("serving.bind-address", "0.0.0.0")
	v.SetDefault("serving.bind-port", 8000)
	v.SetDefault("serving.mode", gin.ReleaseMode)

	return &ServingOptions{
		BindAddress: v.GetString("serving.bind-address"),
		BindPort:    v.GetInt("serving.bind-port"),
		Mode:        v.GetString("serving.mode"),
		Healthz:     true,
	}
}

// ApplyTo fills in the generic server config from the serving options.
func (o *ServingOptions) ApplyTo(c *server.Config) error {
	c.Mode = o.Mode
	c.BindAddress = o.BindAddress
	c.BindPort = o.BindPort
	c.Healthz = o.Healthz
	c.EnableProfiling = o.EnableProfiling
	return nil
}

// Validate checks the ServingOptions for correctness.
func (o *ServingOptions) Validate() []error {
	var errs []error
	if o.BindPort < 1 || o.BindPort > 65535 {
		errs = append(errs, fmt.Errorf("serving.bind-port %d must be between 1 and 65535", o.BindPort))
	}
	switch o.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("serving.mode %q must be one of debug, release, test", o.Mode))
	}
	return errs
}

// AddFlags adds the ServingOptions flags to the given flag set.
func (o *ServingOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BindAddress, "serving.bind-address", o.BindAddress, "IP address to listen on.")
	fs.IntVar(&o.BindPort, "serving.bind-port", o.BindPort, "Port to listen on.")
	fs.StringVar(&o.Mode, "serving.mode", o.Mode, "Server mode: debug, release or test.")
	fs.BoolVar(&o.EnableProfiling, "serving.profiling", o.EnableProfiling, "Enable pprof profiling endpoints.")
}
