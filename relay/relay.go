// Package relay provides the unified request execution layer.
package relay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/YspCoder/duet/adapter"
	"github.com/YspCoder/duet/dto"
	"github.com/YspCoder/duet/utils"
)

// Relay executes provider requests using a unified flow.
type Relay struct {
	Client *http.Client
	Logger utils.Logger
}

// NewRelay creates a relay with default settings.
func NewRelay(logger utils.Logger) *Relay {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Relay{Logger: logger}
}

// Chat executes a chat request and extracts the provider text.
// Non-2xx responses are returned as *dto.LLMError.
func (r *Relay) Chat(ctx context.Context, adp adapter.Adaptor, config *adapter.ProviderConfig, request *dto.ChatRequest) (*dto.ChatResult, error) {
	if config == nil {
		return nil, fmt.Errorf("provider config is required")
	}
	if adp == nil {
		return nil, fmt.Errorf("adaptor is required")
	}

	body, err := adp.ConvertChatRequest(ctx, config, request)
	if err != nil {
		return nil, err
	}
	status, respBody, err := r.doRequest(ctx, adp, config, body)
	if err != nil {
		return nil, err
	}

	result, err := adp.ConvertChatResponse(ctx, config, respBody)
	if err != nil {
		return nil, err
	}
	result.Status = status
	return result, nil
}

func (r *Relay) doRequest(ctx context.Context, adp adapter.Adaptor, config *adapter.ProviderConfig, body []byte) (int, []byte, error) {
	url, err := adp.GetRequestURL(config)
	if err != nil {
		return 0, nil, err
	}
	if url == "" {
		return 0, nil, fmt.Errorf("request url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}

	if err := adp.SetupHeaders(req, config); err != nil {
		return 0, nil, err
	}
	for key, value := range config.Headers {
		req.Header.Set(key, value)
	}

	resp, err := r.client(config).Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	r.logger().Info("Provider API response status", "provider", config.DisplayName, "status", resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, nil, &dto.LLMError{
			Code:     resp.StatusCode,
			Body:     respBody,
			Provider: config.Name,
		}
	}
	return resp.StatusCode, respBody, nil
}

// client picks the provider client, then the relay client, then a fresh one.
// A per-provider timeout is applied to a copy so shared clients are not mutated.
func (r *Relay) client(config *adapter.ProviderConfig) *http.Client {
	client := config.HTTPClient
	if client == nil {
		client = r.Client
	}
	if client == nil {
		client = &http.Client{}
	}
	if config.Timeout > 0 && client.Timeout != config.Timeout {
		copied := *client
		copied.Timeout = config.Timeout
		client = &copied
	}
	return client
}

func (r *Relay) logger() utils.Logger {
	if r.Logger == nil {
		return utils.NewNopLogger()
	}
	return r.Logger
}
