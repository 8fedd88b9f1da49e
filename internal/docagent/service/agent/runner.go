package agent

import (
	"context"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/hibiki-ai/docagent/internal/docagent/service/agent/entity"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
)

// Run executes one agent run for the given question and returns the final
// answer together with the recorded raw model responses. The run has no
// timeout or cancellation of its own; pass a context if the caller needs one.
func (a *Assistant) Run(ctx context.Context, question string) (*entity.RunResult, error) {
	runID := uuid.New().String()[:8]
	logger.Info("[Agent] run %s started", runID)

	recorder := newRunRecorder()

	messages := []*schema.Message{
		schema.SystemMessage(Instructions),
		schema.UserMessage(question),
	}

	out, err := a.runnable.Invoke(ctx, messages, compose.WithCallbacks(recorder.Handler()))
	recorder.Wait()

	if err != nil {
		logger.Warn("[Agent] run %s failed: %v", runID, err)
		return nil, ClassifyRunError(err)
	}

	result := &entity.RunResult{
		FinalOutput:  out.Content,
		RawResponses: recorder.Records(),
	}

	logger.Info("[Agent] run %s finished (%d model calls, %d tool executions)",
		runID, len(result.RawResponses), len(ExtractToolExecutions(result)))

	return result, nil
}
