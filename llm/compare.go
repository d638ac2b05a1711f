package llm

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/YspCoder/duet/adapter"
	"github.com/YspCoder/duet/config"
	"github.com/YspCoder/duet/dto"
	"github.com/YspCoder/duet/relay"
	"github.com/YspCoder/duet/utils"
)

const promptPreviewRunes = 50

// Comparer sends one prompt to two providers concurrently and merges the results.
type Comparer struct {
	openai LLM
	claude LLM
	logger utils.Logger
	tracer oteltrace.Tracer
}

// NewComparer creates a comparer over the two provider clients.
func NewComparer(openai, claude LLM, logger utils.Logger, opts ...Option) *Comparer {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	o := buildOptions(opts)
	return &Comparer{openai: openai, claude: claude, logger: logger, tracer: o.tracer}
}

// NewComparerFromConfig builds both provider clients from cfg.
func NewComparerFromConfig(cfg *config.Config, logger utils.Logger, registry *adapter.Registry, opts ...Option) (*Comparer, error) {
	if cfg == nil {
		return nil, NewLLMError(ErrorTypeInvalidInput, "config is required", nil)
	}
	opts = append([]Option{WithTimeout(cfg.Timeout)}, opts...)

	openai, err := NewLLM(adapter.ProviderOpenAI, cfg.OpenAI, logger, registry, opts...)
	if err != nil {
		return nil, err
	}
	claude, err := NewLLM(adapter.ProviderAnthropic, cfg.Anthropic, logger, registry, opts...)
	if err != nil {
		return nil, err
	}
	return NewComparer(openai, claude, logger, opts...), nil
}

// Compare dispatches both calls without serializing them and waits for both
// to settle. Provider failures never fail the comparison.
func (c *Comparer) Compare(ctx context.Context, prompt string) dto.UnifiedResponse {
	ctx, span := c.tracer.Start(ctx, "duet.compare",
		oteltrace.WithAttributes(attribute.Int("duet.prompt_length", len(prompt))))
	defer span.End()

	c.logger.Info("Processing prompt", "prompt", preview(prompt))

	var (
		wg     sync.WaitGroup
		openai dto.ProviderResult
		claude dto.ProviderResult
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		openai = settle(ctx, c.openai, prompt)
	}()
	go func() {
		defer wg.Done()
		claude = settle(ctx, c.claude, prompt)
	}()
	wg.Wait()

	return dto.NewUnifiedResponse(openai, claude)
}

// settle guards against LLM implementations that break the no-panic contract.
func settle(ctx context.Context, provider LLM, prompt string) (result dto.ProviderResult) {
	defer func() {
		if rec := recover(); rec != nil {
			err, _ := rec.(error)
			result = dto.Failure(relay.ClassifyError(provider.DisplayName(), err))
		}
	}()
	return provider.Generate(ctx, prompt)
}

func preview(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > promptPreviewRunes {
		runes = runes[:promptPreviewRunes]
	}
	return fmt.Sprintf("%s...", string(runes))
}
