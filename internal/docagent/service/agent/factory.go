// Package agent builds and runs the documentation assistant: an eino ReAct
// agent over an Azure OpenAI deployment and the MCP tool set, plus the
// extraction of renderer-ready data from a finished run.
package agent

import (
	"context"
	"errors"
	"fmt"

	einoOpenAI "github.com/cloudwego/eino-ext/components/model/openai"
	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"
	"github.com/hibiki-ai/docagent/internal/docagent/options"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
)

// Instructions is the fixed system prompt for the assistant.
const Instructions = `You provide accurate answers to the user's questions.

When tools are available, use them actively to provide up-to-date and
accurate information. Consider using a tool especially when:
- the latest information is needed
- detailed technical specifications or official documentation must be consulted
- concrete data or statistics are requested

When you use a tool, apply it so that the retrieved information is genuinely
valuable to the user.`

const defaultMaxSteps = 10

// NewChatModel builds the Azure OpenAI chat model from the configured
// deployment. This is the only place the model client is constructed.
func NewChatModel(ctx context.Context, opts *options.AzureOptions) (einoModel.BaseChatModel, error) {
	cm, err := einoOpenAI.NewChatModel(ctx, &einoOpenAI.ChatModelConfig{
		ByAzure:    true,
		BaseURL:    opts.Endpoint,
		APIKey:     opts.APIKey,
		APIVersion: opts.APIVersion,
		Model:      opts.Deployment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure OpenAI chat model: %w", err)
	}
	return cm, nil
}

// Assistant wraps a compiled agent graph ready to answer questions.
type Assistant struct {
	runnable compose.Runnable[[]*schema.Message, *schema.Message]
}

// NewAssistant compiles the agent over the given model and tools. With tools
// it builds a ReAct loop; without tools it degrades to a plain model call so
// the assistant still answers when the tool server is unavailable.
func NewAssistant(ctx context.Context, chatModel einoModel.BaseChatModel, tools []tool.BaseTool) (*Assistant, error) {
	if len(tools) > 0 {
		return newToolAssistant(ctx, chatModel, tools)
	}
	return newPlainAssistant(ctx, chatModel)
}

func newToolAssistant(ctx context.Context, chatModel einoModel.BaseChatModel, tools []tool.BaseTool) (*Assistant, error) {
	tcm, ok := chatModel.(einoModel.ToolCallingChatModel)
	if !ok {
		return nil, errors.New("chat model does not support tool calling")
	}

	reactAgent, err := react.NewAgent(ctx, &react.AgentConfig{
		ToolCallingModel: tcm,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: tools,
		},
		MaxStep: defaultMaxSteps,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ReAct agent: %w", err)
	}

	chain := compose.NewChain[[]*schema.Message, *schema.Message]()
	agentLambda, err := compose.AnyLambda(reactAgent.Generate, reactAgent.Stream, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent lambda: %w", err)
	}
	chain.AppendLambda(agentLambda)

	runnable, err := chain.Compile(ctx, compose.WithGraphName("docagent_react"))
	if err != nil {
		return nil, fmt.Errorf("failed to compile ReAct agent chain: %w", err)
	}

	logger.Info("[Agent] built ReAct assistant with %d tools", len(tools))
	return &Assistant{runnable: runnable}, nil
}

func newPlainAssistant(ctx context.Context, chatModel einoModel.BaseChatModel) (*Assistant, error) {
	chain := compose.NewChain[[]*schema.Message, *schema.Message]()

	chatLambda, err := compose.AnyLambda(
		func(ctx context.Context, messages []*schema.Message, opts ...einoModel.Option) (*schema.Message, error) {
			return chatModel.Generate(ctx, messages, opts...)
		},
		func(ctx context.Context, messages []*schema.Message, opts ...einoModel.Option) (*schema.StreamReader[*schema.Message], error) {
			return chatModel.Stream(ctx, messages, opts...)
		},
		nil, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat lambda: %w", err)
	}
	chain.AppendLambda(chatLambda)

	runnable, err := chain.Compile(ctx, compose.WithGraphName("docagent_plain"))
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	logger.Info("[Agent] built plain assistant (no tools)")
	return &Assistant{runnable: runnable}, nil
}
