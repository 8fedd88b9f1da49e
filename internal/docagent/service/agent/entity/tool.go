package entity

// ToolExecution is one recorded instance of the agent invoking a tool during
// a run. Derived from RawResponse output items; never persisted.
type ToolExecution struct {
	// Name is the tool that was invoked.
	Name string `json:"name"`

	// Arguments is the parsed JSON value of the tool arguments, or the raw
	// string unchanged when the arguments were not valid JSON.
	Arguments interface{} `json:"arguments"`

	// CallID is the provider-assigned call identifier, or "unknown" when the
	// provider did not assign one.
	CallID string `json:"call_id"`
}

// UsageInfo is the token-usage summary for a run, taken from the first raw
// response that carried a usage record. All fields default to zero; a zero
// value is indistinguishable from "not reported".
type UsageInfo struct {
	Input  int `json:"input"`
	Output int `json:"output"`
	Total  int `json:"total"`
	Cached int `json:"cached"`
}
