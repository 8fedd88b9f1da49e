package agent

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/hibiki-ai/docagent/internal/docagent/service/agent/entity"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
)

// runRecorder intercepts ChatModel completions during a run and records one
// RawResponse per underlying model call, in call order. The agent loop may
// execute the model several times (tool round-trips); each execution yields
// its own record.
type runRecorder struct {
	mu      sync.Mutex
	records []*entity.RawResponse
	wg      sync.WaitGroup
}

func newRunRecorder() *runRecorder {
	return &runRecorder{}
}

// Handler returns the eino callbacks handler that feeds this recorder.
func (r *runRecorder) Handler() callbacks.Handler {
	return callbacks.NewHandlerBuilder().
		OnEndFn(r.onEnd).
		OnEndWithStreamOutputFn(r.onEndWithStreamOutput).
		OnErrorFn(r.onError).
		Build()
}

// Wait blocks until all in-flight stream consumers have finished. Must be
// called after the run returns and before Records.
func (r *runRecorder) Wait() {
	r.wg.Wait()
}

// Records returns the recorded raw responses in call order.
func (r *runRecorder) Records() []*entity.RawResponse {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.RawResponse, len(r.records))
	copy(out, r.records)
	return out
}

// newSlot reserves the next record position. Reserving synchronously keeps
// record order equal to model-call order even when stream consumption
// finishes out of order.
func (r *runRecorder) newSlot() *entity.RawResponse {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := &entity.RawResponse{}
	r.records = append(r.records, rec)
	return rec
}

func (r *runRecorder) onEnd(ctx context.Context, info *callbacks.RunInfo, output callbacks.CallbackOutput) context.Context {
	if info == nil || info.Component != components.ComponentOfChatModel {
		return ctx
	}

	cbOut := model.ConvCallbackOutput(output)
	if cbOut == nil || cbOut.Message == nil {
		return ctx
	}

	rec := r.newSlot()
	fillRecord(rec, cbOut.Message, convertModelUsage(cbOut.TokenUsage))
	return ctx
}

func (r *runRecorder) onEndWithStreamOutput(ctx context.Context, info *callbacks.RunInfo, output *schema.StreamReader[callbacks.CallbackOutput]) context.Context {
	if info == nil || info.Component != components.ComponentOfChatModel {
		if output != nil {
			output.Close()
		}
		return ctx
	}

	rec := r.newSlot()
	r.wg.Add(1)
	go r.consumeModelStream(rec, output)
	return ctx
}

func (r *runRecorder) onError(ctx context.Context, info *callbacks.RunInfo, err error) context.Context {
	if info != nil {
		logger.Warn("[Agent] error in %s/%s: %v", info.Component, info.Name, err)
	}
	return ctx
}

// consumeModelStream drains one model call's chunk stream and fills the
// reserved record from the concatenated message.
func (r *runRecorder) consumeModelStream(rec *entity.RawResponse, output *schema.StreamReader[callbacks.CallbackOutput]) {
	defer r.wg.Done()

	if output == nil {
		return
	}

	sr := schema.StreamReaderWithConvert(output, func(t callbacks.CallbackOutput) (*schema.Message, error) {
		cbOut := model.ConvCallbackOutput(t)
		if cbOut == nil || cbOut.Message == nil {
			return nil, nil
		}
		return cbOut.Message, nil
	})

	var chunks []*schema.Message
	for {
		msg, err := sr.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn("[Agent] model stream error: %v", err)
			break
		}
		if msg != nil {
			chunks = append(chunks, msg)
		}
	}

	if len(chunks) == 0 {
		return
	}

	// Usage arrives on the trailing chunks; take the last one seen.
	var usage *entity.ResponseUsage
	for _, msg := range chunks {
		if msg.ResponseMeta != nil && msg.ResponseMeta.Usage != nil {
			usage = convertSchemaUsage(msg.ResponseMeta.Usage)
		}
	}

	merged, err := schema.ConcatMessages(chunks)
	if err != nil {
		logger.Warn("[Agent] failed to concat model chunks: %v", err)
		return
	}

	fillRecord(rec, merged, usage)
}

// fillRecord maps one completed model message onto a RawResponse: text
// content becomes a text item, each tool call becomes a tool-call item.
func fillRecord(rec *entity.RawResponse, msg *schema.Message, usage *entity.ResponseUsage) {
	var items []*entity.OutputItem

	if msg.Content != "" {
		items = append(items, &entity.OutputItem{Text: msg.Content})
	}

	for _, tc := range msg.ToolCalls {
		args := tc.Function.Arguments
		items = append(items, &entity.OutputItem{
			Name:      tc.Function.Name,
			Arguments: &args,
			CallID:    tc.ID,
		})
	}

	rec.Output = items
	rec.Usage = usage
}

func convertModelUsage(u *model.TokenUsage) *entity.ResponseUsage {
	if u == nil {
		return nil
	}

	usage := &entity.ResponseUsage{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalTokens:  u.TotalTokens,
	}
	if cached := u.PromptTokenDetails.CachedTokens; cached > 0 {
		usage.InputTokensDetails = &entity.InputTokensDetails{CachedTokens: cached}
	}
	return usage
}

func convertSchemaUsage(u *schema.TokenUsage) *entity.ResponseUsage {
	if u == nil {
		return nil
	}

	usage := &entity.ResponseUsage{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalTokens:  u.TotalTokens,
	}
	if cached := u.PromptTokenDetails.CachedTokens; cached > 0 {
		usage.InputTokensDetails = &entity.InputTokensDetails{CachedTokens: cached}
	}
	return usage
}
