// Package adapter provides Anthropic adaptor implementation.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/YspCoder/duet/dto"
)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion        = "2023-06-01"
)

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

// AnthropicAdaptor converts requests and responses for the Anthropic Messages API.
type AnthropicAdaptor struct {
	BaseURL string
}

// GetRequestURL returns the Anthropic messages endpoint.
func (a *AnthropicAdaptor) GetRequestURL(config *ProviderConfig) (string, error) {
	return buildRequestURL(resolveBase(config, a.BaseURL, anthropicDefaultBaseURL), "/messages"), nil
}

// SetupHeaders sets Anthropic-specific headers.
func (a *AnthropicAdaptor) SetupHeaders(req *http.Request, config *ProviderConfig) error {
	if config.AuthHeader != "" {
		req.Header.Set(config.AuthHeader, config.AuthPrefix+config.APIKey)
	} else {
		req.Header.Set("x-api-key", config.APIKey)
	}
	req.Header.Set("Content-Type", "application/json")
	if _, ok := config.Headers["anthropic-version"]; !ok {
		req.Header.Set("anthropic-version", anthropicVersion)
	}
	return nil
}

// ConvertChatRequest marshals the Anthropic messages request.
func (a *AnthropicAdaptor) ConvertChatRequest(ctx context.Context, config *ProviderConfig, request *dto.ChatRequest) ([]byte, error) {
	if request == nil {
		return nil, fmt.Errorf("chat request is required")
	}

	payload := anthropicRequest{
		Model:     request.Model,
		MaxTokens: request.MaxTokens,
		Messages:  make([]anthropicMessage, 0, len(request.Messages)),
	}
	for _, msg := range request.Messages {
		payload.Messages = append(payload.Messages, anthropicMessage{Role: msg.Role, Content: msg.Content})
	}
	if payload.MaxTokens == 0 {
		payload.MaxTokens = 1024
	}
	return json.Marshal(payload)
}

// ConvertChatResponse extracts the first text block. Unlike OpenAI, a response
// without usable text is reported as a *dto.ExtractionError, including one
// whose content is missing or is not a list.
func (a *AnthropicAdaptor) ConvertChatResponse(ctx context.Context, config *ProviderConfig, body []byte) (*dto.ChatResult, error) {
	var root json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	text, ok := extractAnthropicText(root)
	if !ok {
		return nil, &dto.ExtractionError{
			Provider:  displayName(config, "Claude"),
			Structure: compactJSON(body),
		}
	}
	return &dto.ChatResult{Text: &text, Raw: body}, nil
}

// extractAnthropicText prefers the first block typed "text" and falls back to
// the text of the first block.
func extractAnthropicText(root json.RawMessage) (string, bool) {
	content, ok := jsonField(root, "content")
	if !ok {
		return "", false
	}
	blocks, ok := jsonElements(content)
	if !ok || len(blocks) == 0 {
		return "", false
	}
	for _, block := range blocks {
		if kind, _ := jsonString(block, "type"); kind == "text" {
			if text, _ := jsonString(block, "text"); text != "" {
				return text, true
			}
			break
		}
	}
	if text, _ := jsonString(blocks[0], "text"); text != "" {
		return text, true
	}
	return "", false
}

func compactJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return string(body)
	}
	return buf.String()
}

func displayName(config *ProviderConfig, fallback string) string {
	if config != nil && config.DisplayName != "" {
		return config.DisplayName
	}
	return fallback
}
