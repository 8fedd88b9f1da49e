package entity

// RunResult is the outcome of one end-to-end agent run against a single user
// question.
type RunResult struct {
	// FinalOutput is the agent's final answer text.
	FinalOutput string `json:"final_output"`

	// RawResponses are the underlying model-call records, in call order.
	// Nil when the run produced no recorded model calls.
	RawResponses []*RawResponse `json:"raw_responses,omitempty"`
}

// RawResponse is one underlying model call within a run. Both fields are
// optional; consumers must tolerate either being absent.
type RawResponse struct {
	// Output holds the model's output items in order. Nil when the call
	// produced no recordable output.
	Output []*OutputItem `json:"output,omitempty"`

	// Usage holds the provider's token accounting for this call, when the
	// provider returned one.
	Usage *ResponseUsage `json:"usage,omitempty"`
}

// OutputItem is one unit of model output. Which fields are populated decides
// the variant: a tool call carries Name and Arguments, a text item carries
// Text. Consumers select on populated fields rather than a discriminator so
// that partially filled records degrade instead of failing.
type OutputItem struct {
	// Text is the assistant text content, if any.
	Text string `json:"text,omitempty"`

	// Name is the tool name for tool-call items.
	Name string `json:"name,omitempty"`

	// Arguments is the JSON-encoded tool arguments string. Nil means the
	// item is not a tool call even if Name is set.
	Arguments *string `json:"arguments,omitempty"`

	// CallID is the provider-assigned tool call identifier, empty when the
	// provider did not assign one.
	CallID string `json:"call_id,omitempty"`
}

// ResponseUsage is the token accounting attached to one model call.
type ResponseUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`

	// InputTokensDetails is present only when the provider reported a
	// breakdown of the input tokens.
	InputTokensDetails *InputTokensDetails `json:"input_tokens_details,omitempty"`
}

// InputTokensDetails breaks down the input token count.
type InputTokensDetails struct {
	CachedTokens int `json:"cached_tokens"`
}
