package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Disconnected", StatusDisconnected.String())
	assert.Equal(t, "Connecting", StatusConnecting.String())
	assert.Equal(t, "Connected", StatusConnected.String())
	assert.Equal(t, "Error", StatusError.String())
	assert.Equal(t, "Unknown", Status(42).String())
}

func TestConfigArgs(t *testing.T) {
	cfg := &Config{Command: "uvx", Package: "awslabs.aws-documentation-mcp-server@latest"}

	assert.Equal(t, []string{"awslabs.aws-documentation-mcp-server@latest"}, cfg.Args())
}

func TestConnectorBeforeConnect(t *testing.T) {
	c := NewConnector(&Config{Command: "uvx", Package: "pkg"})

	assert.Equal(t, StatusDisconnected, c.Status())
	assert.Empty(t, c.Tools())
	assert.Empty(t, c.Descriptors())

	// Close without a prior Connect must be a no-op.
	c.Close()
	assert.Equal(t, StatusDisconnected, c.Status())
}
