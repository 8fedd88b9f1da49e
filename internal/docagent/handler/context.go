// Package handler implements the HTTP surface of the service frontend:
// the index page and the HTML-fragment endpoints for chat, tools and
// settings.
package handler

import (
	"context"

	"github.com/hibiki-ai/docagent/internal/docagent/config"
	"github.com/hibiki-ai/docagent/internal/docagent/service/agent/entity"
	"github.com/hibiki-ai/docagent/internal/docagent/service/mcp"
)

// QuestionRunner answers one user question per call.
type QuestionRunner interface {
	Run(ctx context.Context, question string) (*entity.RunResult, error)
}

// AppContext carries the process-wide state shared by all handlers. It is
// built once at startup, before any request is served, and never mutated
// afterwards.
type AppContext struct {
	// Assistant is nil when startup degraded (tool server or agent
	// construction failed); chat requests then report the agent as
	// unavailable.
	Assistant QuestionRunner

	// Tools is the tool list discovered at startup; empty when degraded.
	Tools []mcp.ToolDescriptor

	// Config is the configuration-presence summary shown to users. It never
	// contains secret values.
	Config ConfigView
}

// ConfigView reports which configuration values are present plus the
// non-secret values themselves.
type ConfigView struct {
	Endpoint   bool   `json:"endpoint"`
	Deployment bool   `json:"deployment"`
	APIVersion string `json:"apiVersion"`
	MCPServer  string `json:"mcpServer"`
}

// NewConfigView derives the presence summary from the running configuration.
func NewConfigView(cfg *config.Config) ConfigView {
	return ConfigView{
		Endpoint:   cfg.AzureOptions.Endpoint != "",
		Deployment: cfg.AzureOptions.Deployment != "",
		APIVersion: cfg.AzureOptions.APIVersion,
		MCPServer:  cfg.MCPOptions.Package,
	}
}
