package docchat

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mitchellh/go-wordwrap"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/hibiki-ai/docagent/internal/docagent/service/agent/entity"
	"github.com/hibiki-ai/docagent/internal/docagent/service/mcp"
	"github.com/hibiki-ai/docagent/internal/pkg/json"
)

// longValueThreshold is the argument-value length above which a string is
// wrapped into its own block instead of printed inline.
const longValueThreshold = 100

var (
	answerPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	usagePanel = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)

	toolPanel = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(0, 1)

	subPanel = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			MarginLeft(2)

	captionText = color.New(color.Faint)
	headingText = color.New(color.Bold, color.FgHiYellow)
	keyText     = color.New(color.FgCyan)
)

// Renderer writes run results as terminal panels.
type Renderer struct {
	out   io.Writer
	width int
}

// NewRenderer builds a renderer for the current terminal.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, width: termWidth()}
}

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// ToolTable renders the discovered tool listing. Nothing is printed when no
// tools were discovered.
func (r *Renderer) ToolTable(descriptors []mcp.ToolDescriptor) {
	if len(descriptors) == 0 {
		return
	}

	table := uitable.New()
	table.MaxColWidth = uint(r.width / 2)
	table.Wrap = true
	table.AddRow("TOOL", "DESCRIPTION")
	for _, d := range descriptors {
		table.AddRow(d.Name, d.Description)
	}

	headingText.Fprintln(r.out, "Available tools")
	fmt.Fprintln(r.out, table.String())
	fmt.Fprintln(r.out)
}

// Answer renders the final answer as markdown inside a panel.
func (r *Renderer) Answer(content string) {
	headingText.Fprintln(r.out, "Answer")
	fmt.Fprintln(r.out, answerPanel.Render(r.markdown(content)))
	fmt.Fprintln(r.out)
}

func (r *Renderer) markdown(content string) string {
	width := r.width - 6
	if width <= 0 {
		width = 76
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithColorProfile(termenv.ANSI256),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// Usage renders the token-usage panel.
func (r *Renderer) Usage(usage entity.UsageInfo) {
	var b strings.Builder
	fmt.Fprintf(&b, "Input tokens:  %d\n", usage.Input)
	fmt.Fprintf(&b, "Output tokens: %d\n", usage.Output)
	fmt.Fprintf(&b, "Total tokens:  %d", usage.Total)
	if usage.Cached > 0 {
		fmt.Fprintf(&b, "\nCached tokens: %d", usage.Cached)
	}

	headingText.Fprintln(r.out, "Token usage")
	fmt.Fprintln(r.out, usagePanel.Render(b.String()))
	fmt.Fprintln(r.out)
}

// ToolExecutions renders one panel per tool call, in call order, separated by
// a divider except after the last one.
func (r *Renderer) ToolExecutions(executions []entity.ToolExecution) {
	if len(executions) == 0 {
		captionText.Fprintln(r.out, "No tools were used.")
		fmt.Fprintln(r.out)
		return
	}

	headingText.Fprintf(r.out, "Tool executions (%d)\n", len(executions))
	for i, exec := range executions {
		r.toolExecution(exec)
		if i < len(executions)-1 {
			r.divider()
		}
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) toolExecution(exec entity.ToolExecution) {
	var b strings.Builder
	b.WriteString(color.New(color.Bold).Sprint(exec.Name))
	b.WriteString("\n")

	switch args := exec.Arguments.(type) {
	case map[string]interface{}:
		r.writeArgumentMap(&b, args)
	case string:
		r.writeValue(&b, "arguments", args)
	default:
		b.WriteString(prettyValue(args))
	}

	b.WriteString("\n")
	b.WriteString(captionText.Sprintf("Call ID: %s", exec.CallID))

	fmt.Fprintln(r.out, toolPanel.Render(b.String()))
}

// writeArgumentMap prints map arguments key by key, sorted for stable output.
func (r *Renderer) writeArgumentMap(b *strings.Builder, args map[string]interface{}) {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		r.writeValue(b, k, args[k])
	}
}

func (r *Renderer) writeValue(b *strings.Builder, key string, value interface{}) {
	switch v := value.(type) {
	case string:
		if len(v) > longValueThreshold {
			b.WriteString(keyText.Sprintf("%s:", key))
			b.WriteString("\n")
			wrapped := wordwrap.WrapString(v, uint(r.wrapWidth()))
			b.WriteString(subPanel.Render(wrapped))
			b.WriteString("\n")
			return
		}
		fmt.Fprintf(b, "%s %s\n", keyText.Sprintf("%s:", key), v)
	case map[string]interface{}, []interface{}:
		b.WriteString(keyText.Sprintf("%s:", key))
		b.WriteString("\n")
		b.WriteString(prettyValue(v))
		b.WriteString("\n")
	default:
		fmt.Fprintf(b, "%s %v\n", keyText.Sprintf("%s:", key), v)
	}
}

func (r *Renderer) wrapWidth() int {
	w := r.width - 12
	if w < 20 {
		w = 20
	}
	return w
}

func prettyValue(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func (r *Renderer) divider() {
	n := r.width - 4
	if n < 20 {
		n = 20
	}
	captionText.Fprintln(r.out, strings.Repeat("-", n))
}

// Error renders a failure message.
func (r *Renderer) Error(message string) {
	color.New(color.Bold, color.FgRed).Fprintf(r.out, "Error: ")
	fmt.Fprintln(r.out, message)
	fmt.Fprintln(r.out)
}
