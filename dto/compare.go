package dto

// PromptRequest is the body accepted by the compare endpoint.
type PromptRequest struct {
	Prompt string `json:"prompt" jsonschema:"required,description=Prompt sent to both providers"`
}

// ProviderResult is the settled outcome of one provider call.
// At most one of Text and Error is set.
type ProviderResult struct {
	Text  *string
	Error *string
}

// Success wraps extracted text, which may be nil.
func Success(text *string) ProviderResult {
	return ProviderResult{Text: text}
}

// Failure wraps a descriptive error message.
func Failure(message string) ProviderResult {
	return ProviderResult{Error: &message}
}

// Failed reports whether the call produced an error.
func (r ProviderResult) Failed() bool {
	return r.Error != nil
}

// Outcome labels the result as "text", "empty" or "error".
func (r ProviderResult) Outcome() string {
	switch {
	case r.Error != nil:
		return "error"
	case r.Text == nil:
		return "empty"
	default:
		return "text"
	}
}

// DebugInfo carries per-provider failure messages.
type DebugInfo struct {
	OpenAIError *string `json:"openaiError" jsonschema:"nullable"`
	ClaudeError *string `json:"claudeError" jsonschema:"nullable"`
}

// UnifiedResponse is returned for every prompt regardless of provider outcomes.
type UnifiedResponse struct {
	OpenAI *string   `json:"openai" jsonschema:"nullable"`
	Claude *string   `json:"claude" jsonschema:"nullable"`
	Debug  DebugInfo `json:"debug"`
}

// NewUnifiedResponse merges the two provider results.
func NewUnifiedResponse(openai, claude ProviderResult) UnifiedResponse {
	return UnifiedResponse{
		OpenAI: openai.Text,
		Claude: claude.Text,
		Debug: DebugInfo{
			OpenAIError: openai.Error,
			ClaudeError: claude.Error,
		},
	}
}

// ErrorResponse is the body of every non-200 answer from the compare endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
