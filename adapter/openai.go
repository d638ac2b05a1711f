// Package adapter provides OpenAI adaptor implementation.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/YspCoder/duet/dto"
)

const openAIDefaultBaseURL = "https://api.openai.com/v1"

// OpenAIAdaptor converts requests and responses to the OpenAI chat completions format.
type OpenAIAdaptor struct {
	BaseURL string
}

// GetRequestURL returns the OpenAI chat completions endpoint.
func (a *OpenAIAdaptor) GetRequestURL(config *ProviderConfig) (string, error) {
	return buildRequestURL(resolveBase(config, a.BaseURL, openAIDefaultBaseURL), "/chat/completions"), nil
}

// SetupHeaders sets OpenAI-specific headers. The bearer header is sent even
// without a key so that an unauthenticated call fails remotely.
func (a *OpenAIAdaptor) SetupHeaders(req *http.Request, config *ProviderConfig) error {
	if config.AuthHeader != "" {
		req.Header.Set(config.AuthHeader, config.AuthPrefix+config.APIKey)
	} else {
		req.Header.Set("Authorization", "Bearer "+config.APIKey)
	}
	req.Header.Set("Content-Type", "application/json")
	return nil
}

// ConvertChatRequest marshals the OpenAI chat request.
func (a *OpenAIAdaptor) ConvertChatRequest(ctx context.Context, config *ProviderConfig, request *dto.ChatRequest) ([]byte, error) {
	if request == nil {
		return nil, fmt.Errorf("chat request is required")
	}
	return json.Marshal(request)
}

// ConvertChatResponse reads choices[0].message.content. A missing path, or a
// node of the wrong type along it, is not an error. Only a body that is not
// JSON at all fails.
func (a *OpenAIAdaptor) ConvertChatResponse(ctx context.Context, config *ProviderConfig, body []byte) (*dto.ChatResult, error) {
	var root json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return &dto.ChatResult{Text: firstChoiceContent(root), Raw: body}, nil
}

func firstChoiceContent(root json.RawMessage) *string {
	choices, ok := jsonField(root, "choices")
	if !ok {
		return nil
	}
	choice, ok := jsonIndex(choices, 0)
	if !ok {
		return nil
	}
	message, ok := jsonField(choice, "message")
	if !ok {
		return nil
	}
	// null or a non-string content part list yields no text
	content, ok := jsonString(message, "content")
	if !ok {
		return nil
	}
	return &content
}
