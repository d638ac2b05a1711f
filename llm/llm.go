// Package llm provides provider clients that always settle into a
// dto.ProviderResult and the comparer that fans a prompt out to two of them.
package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/YspCoder/duet/adapter"
	"github.com/YspCoder/duet/config"
	"github.com/YspCoder/duet/dto"
	"github.com/YspCoder/duet/metrics"
	"github.com/YspCoder/duet/relay"
	"github.com/YspCoder/duet/utils"
)

// LLM is one provider behind the unified prompt/result contract.
type LLM interface {
	// Name returns the registry name, e.g. "openai".
	Name() string

	// DisplayName returns the name used in error messages, e.g. "OpenAI".
	DisplayName() string

	// Generate performs exactly one provider call. It never panics and never
	// returns an error: failures are carried in the result.
	Generate(ctx context.Context, prompt string) dto.ProviderResult
}

// LLMImpl implements LLM on top of an adaptor and the relay.
type LLMImpl struct {
	providerName string
	displayName  string
	logger       utils.Logger
	relay        *relay.Relay
	adaptor      adapter.Adaptor
	adaptorCfg   *adapter.ProviderConfig
	metrics      metrics.Recorder
	tracer       oteltrace.Tracer
}

// NewLLM creates a provider client from its settings and registry spec.
//
// Returns:
//   - ErrorTypeAuthentication if the API key is empty
//   - ErrorTypeProvider if the provider is unknown to the registry
func NewLLM(provider string, settings config.ProviderSettings, logger utils.Logger, registry *adapter.Registry, opts ...Option) (LLM, error) {
	if strings.TrimSpace(settings.APIKey) == "" {
		return nil, NewLLMError(ErrorTypeAuthentication, "empty API key for "+provider, nil)
	}
	if registry == nil {
		registry = adapter.GetDefaultRegistry()
	}
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	adp, spec, err := registry.BuildAdaptor(provider)
	if err != nil {
		return nil, NewLLMError(ErrorTypeProvider, "build adaptor", err)
	}

	o := buildOptions(opts)

	headers := make(map[string]string, len(spec.RequiredHeaders))
	for key, value := range spec.RequiredHeaders {
		headers[key] = value
	}
	if settings.Version != "" {
		if _, ok := headers["anthropic-version"]; ok {
			headers["anthropic-version"] = settings.Version
		}
	}

	baseURL := spec.Endpoint
	if settings.BaseURL != "" {
		baseURL = settings.BaseURL
	}
	model := settings.Model
	if model == "" {
		model = spec.DefaultModel
	}
	maxTokens := settings.MaxTokens
	if maxTokens <= 0 {
		maxTokens = spec.DefaultMaxTokens
	}
	displayName := spec.DisplayName
	if displayName == "" {
		displayName = spec.Name
	}

	return &LLMImpl{
		providerName: spec.Name,
		displayName:  displayName,
		logger:       logger,
		relay:        relay.NewRelay(logger),
		adaptor:      adp,
		adaptorCfg: &adapter.ProviderConfig{
			Name:        spec.Name,
			DisplayName: displayName,
			APIKey:      settings.APIKey,
			BaseURL:     baseURL,
			Model:       model,
			MaxTokens:   maxTokens,
			AuthHeader:  spec.AuthHeader,
			AuthPrefix:  spec.AuthPrefix,
			Headers:     headers,
			HTTPClient:  o.httpClient,
			Timeout:     o.timeout,
		},
		metrics: o.metrics,
		tracer:  o.tracer,
	}, nil
}

func (l *LLMImpl) Name() string        { return l.providerName }
func (l *LLMImpl) DisplayName() string { return l.displayName }

// Generate sends the prompt as a single user turn and settles the outcome.
func (l *LLMImpl) Generate(ctx context.Context, prompt string) (result dto.ProviderResult) {
	ctx, span := l.tracer.Start(ctx, "duet.provider",
		oteltrace.WithAttributes(attribute.String("duet.provider", l.providerName)))
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			l.logger.Error("Provider call panicked", "provider", l.displayName, "panic", rec)
			err, _ := rec.(error)
			result = dto.Failure(relay.ClassifyError(l.displayName, err))
		}
		outcome := result.Outcome()
		span.SetAttributes(attribute.String("duet.outcome", outcome))
		if result.Error != nil {
			span.SetStatus(codes.Error, *result.Error)
		}
		span.End()
		l.metrics.ObserveProviderCall(l.providerName, outcome, time.Since(start))
	}()

	l.logger.Info("Calling provider API", "provider", l.displayName, "model", l.adaptorCfg.Model)

	request := dto.NewPromptRequest(l.adaptorCfg.Model, l.adaptorCfg.MaxTokens, prompt)
	response, err := l.relay.Chat(ctx, l.adaptor, l.adaptorCfg, request)
	if err != nil {
		return l.failure(err)
	}

	if response.Text != nil {
		l.logger.Info("Provider response result", "provider", l.displayName, "result", "Content received")
	} else {
		l.logger.Info("Provider response result", "provider", l.displayName, "result", "No content")
	}
	l.logger.Debug("Provider API response", "provider", l.displayName, "body", string(response.Raw))
	return dto.Success(response.Text)
}

func (l *LLMImpl) failure(err error) dto.ProviderResult {
	var extractErr *dto.ExtractionError
	if errors.As(err, &extractErr) {
		l.logger.Warn("Provider response result", "provider", l.displayName, "result", "No content")
		return dto.Failure(extractErr.Error())
	}

	var apiErr *dto.LLMError
	if errors.As(err, &apiErr) {
		l.logger.Error("Provider API error", "provider", l.displayName, "status", apiErr.Code, "body", string(apiErr.Body))
	}
	message := relay.ClassifyError(l.displayName, err)
	l.logger.Error(message, "provider", l.displayName)
	return dto.Failure(message)
}
