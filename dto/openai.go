// Package dto defines standardized request and response payloads.
package dto

// Message represents a single message in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the provider-neutral chat request handed to an adaptor.
// Its JSON form is the OpenAI chat completions body.
type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

// NewPromptRequest builds a request carrying the prompt as a single user turn.
func NewPromptRequest(model string, maxTokens int, prompt string) *ChatRequest {
	return &ChatRequest{
		Model:     model,
		Messages:  []Message{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	}
}

// ChatResult is the outcome of a successful provider call.
type ChatResult struct {
	// Text is nil when the provider answered without extractable text.
	Text   *string
	Status int
	Raw    []byte
}
