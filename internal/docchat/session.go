package docchat

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hibiki-ai/docagent/internal/docagent/options"
	"github.com/hibiki-ai/docagent/internal/docagent/service/agent"
	"github.com/hibiki-ai/docagent/internal/docagent/service/mcp"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
)

// State is the phase of one question-answer run.
type State int

const (
	StateIdle State = iota
	StateConfiguring
	StateConnecting
	StateAwaitingResult
	StateRendering
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateConfiguring:
		return "Configuring"
	case StateConnecting:
		return "Connecting"
	case StateAwaitingResult:
		return "AwaitingResult"
	case StateRendering:
		return "Rendering"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// validTransitions maps each state to the states it may move to.
var validTransitions = map[State][]State{
	StateIdle:           {StateConfiguring},
	StateConfiguring:    {StateConnecting, StateFailed},
	StateConnecting:     {StateAwaitingResult, StateFailed},
	StateAwaitingResult: {StateRendering, StateFailed},
	StateRendering:      {StateDone},
	StateDone:           {StateConfiguring},
	StateFailed:         {StateConfiguring},
}

// CanTransition reports whether moving from one state to another is allowed.
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Session drives one question at a time through the run phases. Every run
// opens a fresh tool-server connection and builds a fresh agent; nothing is
// shared between runs.
type Session struct {
	opts     *options.Options
	renderer *Renderer
	state    State
}

// NewSession creates a session over the given configuration.
func NewSession(opts *options.Options, renderer *Renderer) *Session {
	return &Session{
		opts:     opts,
		renderer: renderer,
		state:    StateIdle,
	}
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

func (s *Session) transition(to State) {
	if !CanTransition(s.state, to) {
		logger.Warn("[DocChat] invalid transition %s -> %s", s.state, to)
	}
	s.state = to
}

func (s *Session) fail(message string) error {
	s.transition(StateFailed)
	s.renderer.Error(message)
	return fmt.Errorf("%s", message)
}

// Ask runs a single question end to end and renders the outcome. The
// tool-server connection opened for the run is torn down on every exit path.
func (s *Session) Ask(ctx context.Context, question string) error {
	s.transition(StateConfiguring)
	if missing := s.opts.AzureOptions.Missing(); len(missing) > 0 {
		return s.fail("Missing configuration: " + strings.Join(missing, ", "))
	}

	s.transition(StateConnecting)
	connector := mcp.NewConnector(&mcp.Config{
		Command: s.opts.MCPOptions.Command,
		Package: s.opts.MCPOptions.Package,
		Env:     os.Environ(),
	})
	if err := connector.Connect(ctx); err != nil {
		return s.fail(fmt.Sprintf("Tool server connection failed: %v", err))
	}
	defer connector.Close()

	s.renderer.ToolTable(connector.Descriptors())

	chatModel, err := agent.NewChatModel(ctx, s.opts.AzureOptions)
	if err != nil {
		return s.fail(fmt.Sprintf("Chat model initialization failed: %v", err))
	}

	assistant, err := agent.NewAssistant(ctx, chatModel, connector.Tools())
	if err != nil {
		return s.fail(fmt.Sprintf("Agent initialization failed: %v", err))
	}

	s.transition(StateAwaitingResult)
	result, err := assistant.Run(ctx, question)
	if err != nil {
		return s.fail(agent.UserMessage(err))
	}

	s.transition(StateRendering)
	s.renderer.Answer(result.FinalOutput)
	s.renderer.ToolExecutions(agent.ExtractToolExecutions(result))
	if agent.HasUsage(result) {
		s.renderer.Usage(agent.ExtractUsageInfo(result))
	}

	s.transition(StateDone)
	return nil
}
