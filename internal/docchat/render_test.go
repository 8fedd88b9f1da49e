package docchat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hibiki-ai/docagent/internal/docagent/service/agent/entity"
	"github.com/hibiki-ai/docagent/internal/docagent/service/mcp"
)

func newBufferRenderer() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Renderer{out: &buf, width: 80}, &buf
}

func TestToolExecutionsEmpty(t *testing.T) {
	r, buf := newBufferRenderer()

	r.ToolExecutions(nil)

	assert.Contains(t, buf.String(), "No tools were used.")
}

func TestToolExecutionsInlineArguments(t *testing.T) {
	r, buf := newBufferRenderer()

	r.ToolExecutions([]entity.ToolExecution{
		{
			Name:      "search_documentation",
			Arguments: map[string]interface{}{"search_phrase": "lambda", "limit": 5},
			CallID:    "call_7",
		},
	})

	out := buf.String()
	assert.Contains(t, out, "search_documentation")
	assert.Contains(t, out, "search_phrase:")
	assert.Contains(t, out, "lambda")
	assert.Contains(t, out, "call_7")
}

func TestToolExecutionsLongValueWrapped(t *testing.T) {
	r, buf := newBufferRenderer()

	long := strings.TrimSpace(strings.Repeat("alpha beta gamma delta ", 8))
	assert.Greater(t, len(long), longValueThreshold)

	r.ToolExecutions([]entity.ToolExecution{
		{
			Name:      "read_documentation",
			Arguments: map[string]interface{}{"url": long},
			CallID:    "call_1",
		},
	})

	out := buf.String()
	assert.Contains(t, out, "url:")
	assert.NotContains(t, out, long, "long values must be wrapped, not printed inline")
	assert.Contains(t, out, "alpha beta gamma delta")
}

func TestToolExecutionsShortValueNotWrapped(t *testing.T) {
	r, buf := newBufferRenderer()

	r.ToolExecutions([]entity.ToolExecution{
		{
			Name:      "read_documentation",
			Arguments: map[string]interface{}{"url": "https://docs.aws.amazon.com/lambda/"},
			CallID:    "call_1",
		},
	})

	assert.Contains(t, buf.String(), "https://docs.aws.amazon.com/lambda/")
}

func TestToolExecutionsRawStringArguments(t *testing.T) {
	r, buf := newBufferRenderer()

	r.ToolExecutions([]entity.ToolExecution{
		{Name: "search_documentation", Arguments: "not json at all", CallID: "unknown"},
	})

	out := buf.String()
	assert.Contains(t, out, "not json at all")
	assert.Contains(t, out, "unknown")
}

func TestToolExecutionsDividerPlacement(t *testing.T) {
	r, buf := newBufferRenderer()
	divider := strings.Repeat("-", r.width-4)

	exec := entity.ToolExecution{
		Name:      "search_documentation",
		Arguments: map[string]interface{}{"search_phrase": "s3"},
		CallID:    "c",
	}

	r.ToolExecutions([]entity.ToolExecution{exec})
	assert.Equal(t, 0, strings.Count(buf.String(), divider),
		"single execution has no divider")

	buf.Reset()
	r.ToolExecutions([]entity.ToolExecution{exec, exec, exec})
	assert.Equal(t, 2, strings.Count(buf.String(), divider),
		"divider goes between executions, not after the last")
}

func TestUsagePanel(t *testing.T) {
	r, buf := newBufferRenderer()

	r.Usage(entity.UsageInfo{Input: 100, Output: 40, Total: 140})

	out := buf.String()
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "140")
	assert.NotContains(t, out, "Cached")
}

func TestUsagePanelCached(t *testing.T) {
	r, buf := newBufferRenderer()

	r.Usage(entity.UsageInfo{Input: 100, Output: 40, Total: 140, Cached: 16})

	out := buf.String()
	assert.Contains(t, out, "Cached tokens")
	assert.Contains(t, out, "16")
}

func TestToolTableEmpty(t *testing.T) {
	r, buf := newBufferRenderer()

	r.ToolTable(nil)

	assert.Empty(t, buf.String())
}

func TestToolTable(t *testing.T) {
	r, buf := newBufferRenderer()

	r.ToolTable([]mcp.ToolDescriptor{
		{Name: "search_documentation", Description: "Search AWS docs"},
	})

	out := buf.String()
	assert.Contains(t, out, "search_documentation")
	assert.Contains(t, out, "Search AWS docs")
}
