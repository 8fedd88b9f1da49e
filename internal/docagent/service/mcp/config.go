package mcp

// Config defines how the tool-server subprocess is launched.
type Config struct {
	// Command is the executable, e.g. "uvx".
	Command string

	// Package is the MCP server package identifier, passed as the sole
	// argument.
	Package string

	// Env is the environment for the subprocess, "KEY=VALUE" entries.
	// Empty means inherit nothing beyond what the client library provides.
	Env []string
}

// Args returns the command-line arguments for the subprocess.
func (c *Config) Args() []string {
	return []string{c.Package}
}
