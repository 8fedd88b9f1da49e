package agent

import (
	"github.com/hibiki-ai/docagent/internal/docagent/service/agent/entity"
	"github.com/hibiki-ai/docagent/internal/pkg/json"
)

// UnknownCallID is recorded when an output item carries no call identifier.
const UnknownCallID = "unknown"

// ExtractToolExecutions converts a run result into the ordered list of tool
// invocations that occurred during the run. Records without output are
// skipped, items that are not tool calls are ignored, and ordering across all
// records is preserved. Repeated identical calls produce repeated entries.
//
// Extraction never fails: a nil result or a result without raw responses
// yields an empty list.
func ExtractToolExecutions(result *entity.RunResult) []entity.ToolExecution {
	var executions []entity.ToolExecution

	if result == nil {
		return executions
	}

	for _, raw := range result.RawResponses {
		if raw == nil || raw.Output == nil {
			continue
		}

		for _, item := range raw.Output {
			if item == nil || item.Name == "" || item.Arguments == nil {
				continue
			}

			callID := item.CallID
			if callID == "" {
				callID = UnknownCallID
			}

			executions = append(executions, entity.ToolExecution{
				Name:      item.Name,
				Arguments: parseArguments(*item.Arguments),
				CallID:    callID,
			})
		}
	}

	return executions
}

// parseArguments decodes the JSON-encoded argument string. When the string is
// not valid JSON it is kept verbatim rather than surfacing an error.
func parseArguments(raw string) interface{} {
	var parsed interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}
	return parsed
}

// ExtractUsageInfo returns the token usage of the first raw response that
// carries a usage record. Later records are ignored even when they also carry
// usage; counts are never summed across records. Missing data yields zeros.
func ExtractUsageInfo(result *entity.RunResult) entity.UsageInfo {
	info := entity.UsageInfo{}

	if result == nil {
		return info
	}

	for _, raw := range result.RawResponses {
		if raw == nil || raw.Usage == nil {
			continue
		}

		info.Input = raw.Usage.InputTokens
		info.Output = raw.Usage.OutputTokens
		info.Total = raw.Usage.TotalTokens

		if details := raw.Usage.InputTokensDetails; details != nil {
			info.Cached = details.CachedTokens
		}
		break
	}

	return info
}

// HasUsage reports whether any raw response carried a usage record. The
// renderer uses this to decide whether to show the usage panel at all, since
// UsageInfo itself cannot distinguish "absent" from "zero".
func HasUsage(result *entity.RunResult) bool {
	if result == nil {
		return false
	}
	for _, raw := range result.RawResponses {
		if raw != nil && raw.Usage != nil {
			return true
		}
	}
	return false
}
