package agent

import (
	"testing"

	"github.com/hibiki-ai/docagent/internal/docagent/service/agent/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExtractToolExecutionsNoRawResponses(t *testing.T) {
	assert.Empty(t, ExtractToolExecutions(nil))
	assert.Empty(t, ExtractToolExecutions(&entity.RunResult{FinalOutput: "hi"}))
}

func TestExtractToolExecutionsParsesJSONArguments(t *testing.T) {
	result := &entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{Output: []*entity.OutputItem{
				{Name: "search_documentation", Arguments: strPtr(`{"search_phrase":"lambda"}`), CallID: "call_1"},
			}},
		},
	}

	execs := ExtractToolExecutions(result)
	require.Len(t, execs, 1)
	assert.Equal(t, "search_documentation", execs[0].Name)
	assert.Equal(t, "call_1", execs[0].CallID)
	assert.Equal(t, map[string]interface{}{"search_phrase": "lambda"}, execs[0].Arguments)
}

func TestExtractToolExecutionsKeepsRawOnInvalidJSON(t *testing.T) {
	result := &entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{Output: []*entity.OutputItem{
				{Name: "read_documentation", Arguments: strPtr("not json"), CallID: "call_2"},
			}},
		},
	}

	execs := ExtractToolExecutions(result)
	require.Len(t, execs, 1)
	assert.Equal(t, "not json", execs[0].Arguments)
}

func TestExtractToolExecutionsSkipsRecordsWithoutOutput(t *testing.T) {
	result := &entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{Usage: &entity.ResponseUsage{InputTokens: 10}},
			{Output: []*entity.OutputItem{
				{Name: "search_docs", Arguments: strPtr(`{"q":"agentcore"}`), CallID: "c1"},
			}},
		},
	}

	execs := ExtractToolExecutions(result)
	require.Len(t, execs, 1)
	assert.Equal(t, "search_docs", execs[0].Name)
	assert.Equal(t, map[string]interface{}{"q": "agentcore"}, execs[0].Arguments)
	assert.Equal(t, "c1", execs[0].CallID)
}

func TestExtractToolExecutionsMissingCallID(t *testing.T) {
	result := &entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{Output: []*entity.OutputItem{
				{Name: "search_docs", Arguments: strPtr(`{}`)},
			}},
		},
	}

	execs := ExtractToolExecutions(result)
	require.Len(t, execs, 1)
	assert.Equal(t, UnknownCallID, execs[0].CallID)
}

func TestExtractToolExecutionsIgnoresNonToolItems(t *testing.T) {
	result := &entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{Output: []*entity.OutputItem{
				{Text: "thinking..."},
				{Name: "named-but-no-arguments"},
				{Name: "a", Arguments: strPtr(`1`), CallID: "x"},
			}},
		},
	}

	execs := ExtractToolExecutions(result)
	require.Len(t, execs, 1)
	assert.Equal(t, "a", execs[0].Name)
}

func TestExtractToolExecutionsPreservesOrderAndDuplicates(t *testing.T) {
	result := &entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{Output: []*entity.OutputItem{
				{Name: "search_docs", Arguments: strPtr(`{"q":"one"}`), CallID: "c1"},
				{Name: "search_docs", Arguments: strPtr(`{"q":"one"}`), CallID: "c1"},
			}},
			{Output: []*entity.OutputItem{
				{Name: "read_docs", Arguments: strPtr(`{"url":"two"}`), CallID: "c2"},
			}},
		},
	}

	execs := ExtractToolExecutions(result)
	require.Len(t, execs, 3)
	assert.Equal(t, "search_docs", execs[0].Name)
	assert.Equal(t, "search_docs", execs[1].Name)
	assert.Equal(t, "read_docs", execs[2].Name)
}

func TestExtractUsageInfoDefaultsToZeros(t *testing.T) {
	assert.Equal(t, entity.UsageInfo{}, ExtractUsageInfo(nil))
	assert.Equal(t, entity.UsageInfo{}, ExtractUsageInfo(&entity.RunResult{}))
	assert.Equal(t, entity.UsageInfo{}, ExtractUsageInfo(&entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{Output: []*entity.OutputItem{{Text: "no usage here"}}},
		},
	}))
}

func TestExtractUsageInfoFirstMatchWins(t *testing.T) {
	result := &entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{Usage: &entity.ResponseUsage{InputTokens: 100, OutputTokens: 20, TotalTokens: 120}},
			{Usage: &entity.ResponseUsage{InputTokens: 500, OutputTokens: 50, TotalTokens: 550}},
		},
	}

	info := ExtractUsageInfo(result)
	assert.Equal(t, entity.UsageInfo{Input: 100, Output: 20, Total: 120}, info)
}

func TestExtractUsageInfoSkipsLeadingRecordsWithoutUsage(t *testing.T) {
	result := &entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{},
			{Usage: &entity.ResponseUsage{
				InputTokens:        40,
				OutputTokens:       8,
				TotalTokens:        48,
				InputTokensDetails: &entity.InputTokensDetails{CachedTokens: 16},
			}},
		},
	}

	info := ExtractUsageInfo(result)
	assert.Equal(t, entity.UsageInfo{Input: 40, Output: 8, Total: 48, Cached: 16}, info)
}

func TestExtractUsageInfoCachedDefaultsWithoutDetails(t *testing.T) {
	result := &entity.RunResult{
		RawResponses: []*entity.RawResponse{
			{Usage: &entity.ResponseUsage{InputTokens: 10, OutputTokens: 2, TotalTokens: 12}},
		},
	}

	assert.Equal(t, 0, ExtractUsageInfo(result).Cached)
}

func TestHasUsage(t *testing.T) {
	assert.False(t, HasUsage(nil))
	assert.False(t, HasUsage(&entity.RunResult{}))
	assert.False(t, HasUsage(&entity.RunResult{
		RawResponses: []*entity.RawResponse{{}},
	}))
	assert.True(t, HasUsage(&entity.RunResult{
		RawResponses: []*entity.RawResponse{{}, {Usage: &entity.ResponseUsage{}}},
	}))
}
