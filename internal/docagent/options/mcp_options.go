package options

import (
	"errors"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvMCPServerPackage selects which documentation MCP server package the tool
// subprocess launches.
const EnvMCPServerPackage = "MCP_SERVER_PACKAGE"

// DefaultMCPServerPackage is the AWS documentation MCP server.
const DefaultMCPServerPackage = "awslabs.aws-documentation-mcp-server@latest"

// DefaultMCPCommand launches Python MCP server packages without a prior
// install step.
const DefaultMCPCommand = "uvx"

// MCPOptions holds options for the MCP tool-server subprocess.
type MCPOptions struct {
	// Command is the executable used to launch the tool server.
	Command string `json:"command" mapstructure:"command"`

	// Package is the MCP server package identifier, passed to Command as its
	// sole argument.
	Package string `json:"package" mapstructure:"package"`
}

// NewMCPOptions creates an MCPOptions instance sourced from the environment.
func NewMCPOptions(v *viper.Viper) *MCPOptions {
	_ = v.BindEnv("mcp.package", EnvMCPServerPackage)
	v.SetDefault("mcp.package", DefaultMCPServerPackage)
	v.SetDefault("mcp.command", DefaultMCPCommand)

	return &MCPOptions{
		Command: v.GetString("mcp.command"),
		Package: v.GetString("mcp.package"),
	}
}

// Validate checks the MCPOptions for correctness.
func (o *MCPOptions) Validate() []error {
	var errs []error
	if o.Command == "" {
		errs = append(errs, errors.New("mcp.command is required"))
	}
	if o.Package == "" {
		errs = append(errs, errors.New("mcp.package is required"))
	}
	return errs
}

// AddFlags adds the MCPOptions flags to the given flag set.
func (o *MCPOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Command, "mcp.command", o.Command, "Executable used to launch the MCP tool server.")
	fs.StringVar(&o.Package, "mcp.package", o.Package, "MCP server package identifier to launch.")
}
