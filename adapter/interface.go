// Package adapter defines provider-specific adaptors for unified DTOs.
package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/YspCoder/duet/dto"
)

// ProviderConfig holds configuration for a specific provider.
type ProviderConfig struct {
	Name        string
	DisplayName string
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	AuthHeader  string
	AuthPrefix  string
	Headers     map[string]string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// Adaptor defines the interface for provider-specific conversions and routing.
type Adaptor interface {
	// GetRequestURL returns the provider chat endpoint.
	GetRequestURL(config *ProviderConfig) (string, error)

	// SetupHeaders sets authentication and content headers for the request.
	SetupHeaders(req *http.Request, config *ProviderConfig) error

	// ConvertChatRequest marshals the provider request body.
	ConvertChatRequest(ctx context.Context, config *ProviderConfig, request *dto.ChatRequest) ([]byte, error)

	// ConvertChatResponse extracts text from a 2xx response body.
	// A nil Text with a nil error means the provider returned no text.
	ConvertChatResponse(ctx context.Context, config *ProviderConfig, body []byte) (*dto.ChatResult, error)
}
