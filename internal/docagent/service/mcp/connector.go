// Package mcp manages the connection to the documentation tool server: a
// subprocess speaking the Model Context Protocol over stdio.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpTool "github.com/cloudwego/eino-ext/components/tool/mcp"
	"github.com/cloudwego/eino/components/tool"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// Status represents the connection state of the tool server.
type Status int

const (
	StatusDisconnected Status = iota
	StatusConnecting
	StatusConnected
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "Disconnected"
	case StatusConnecting:
		return "Connecting"
	case StatusConnected:
		return "Connected"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// ToolDescriptor describes one tool exposed by the connected tool server.
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Connector owns one tool-server subprocess connection. Connect and Close
// form an explicit pair; Close is safe on every exit path, including after a
// failed Connect.
type Connector struct {
	config *Config

	mu          sync.RWMutex
	client      client.MCPClient
	tools       []tool.BaseTool
	descriptors []ToolDescriptor
	status      Status
	err         error
}

// NewConnector creates a connector for the configured tool-server package.
func NewConnector(cfg *Config) *Connector {
	return &Connector{
		config: cfg,
		status: StatusDisconnected,
	}
}

// Status returns the current connection status.
func (c *Connector) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Tools returns the discovered agent-usable tools (empty if not connected).
func (c *Connector) Tools() []tool.BaseTool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]tool.BaseTool, len(c.tools))
	copy(result, c.tools)
	return result
}

// Descriptors returns the name/description pairs of the discovered tools.
func (c *Connector) Descriptors() []ToolDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]ToolDescriptor, len(c.descriptors))
	copy(result, c.descriptors)
	return result
}

// Connect launches the tool-server subprocess, performs the protocol
// handshake and discovers the exposed tools.
func (c *Connector) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = StatusConnecting
	c.err = nil

	cli, err := client.NewStdioMCPClient(c.config.Command, c.config.Env, c.config.Args()...)
	if err != nil {
		c.status = StatusError
		c.err = err
		return fmt.Errorf("[MCP] package %q: failed to launch tool server: %w", c.config.Package, err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "docagent",
		Version: "0.1.0",
	}

	if _, err := cli.Initialize(ctx, initReq); err != nil {
		c.status = StatusError
		c.err = err
		closeQuietly(cli, c.config.Package)
		return fmt.Errorf("[MCP] package %q: failed to initialize: %w", c.config.Package, err)
	}

	listed, err := cli.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		c.status = StatusError
		c.err = err
		closeQuietly(cli, c.config.Package)
		return fmt.Errorf("[MCP] package %q: failed to list tools: %w", c.config.Package, err)
	}

	descriptors := make([]ToolDescriptor, 0, len(listed.Tools))
	for _, t := range listed.Tools {
		descriptors = append(descriptors, ToolDescriptor{
			Name:        t.Name,
			Description: t.Description,
		})
	}

	tools, err := mcpTool.GetTools(ctx, &mcpTool.Config{Cli: cli})
	if err != nil {
		c.status = StatusError
		c.err = err
		closeQuietly(cli, c.config.Package)
		return fmt.Errorf("[MCP] package %q: failed to adapt tools: %w", c.config.Package, err)
	}

	c.client = cli
	c.tools = tools
	c.descriptors = descriptors
	c.status = StatusConnected

	logger.Info("[MCP] connected to %q (%d tools)", c.config.Package, len(descriptors))
	return nil
}

// Close tears down the connection and the subprocess. Errors from the close
// are logged and swallowed; Close never fails.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		closeQuietly(c.client, c.config.Package)
		c.client = nil
	}

	c.tools = nil
	c.descriptors = nil
	c.status = StatusDisconnected
	c.err = nil
}

func closeQuietly(cli client.MCPClient, pkg string) {
	if err := cli.Close(); err != nil {
		logger.Warn("[MCP] package %q: failed to close client: %v", pkg, err)
	}
}
