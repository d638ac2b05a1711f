package adapter

import "testing"

func TestRegistryBuildsKnownAdaptors(t *testing.T) {
	registry := NewRegistry()

	adp, spec, err := registry.BuildAdaptor(ProviderOpenAI)
	if err != nil {
		t.Fatalf("BuildAdaptor(openai) error: %v", err)
	}
	if _, ok := adp.(*OpenAIAdaptor); !ok {
		t.Fatalf("expected *OpenAIAdaptor, got %T", adp)
	}
	if spec.DisplayName != "OpenAI" || spec.DefaultModel != "gpt-4-turbo" || spec.DefaultMaxTokens != 1000 {
		t.Fatalf("unexpected openai spec: %+v", spec)
	}

	adp, spec, err = registry.BuildAdaptor(ProviderAnthropic)
	if err != nil {
		t.Fatalf("BuildAdaptor(anthropic) error: %v", err)
	}
	if _, ok := adp.(*AnthropicAdaptor); !ok {
		t.Fatalf("expected *AnthropicAdaptor, got %T", adp)
	}
	if spec.DisplayName != "Claude" || spec.RequiredHeaders["anthropic-version"] != "2023-06-01" {
		t.Fatalf("unexpected anthropic spec: %+v", spec)
	}
}

func TestRegistryFiltersAndOverrides(t *testing.T) {
	registry := NewRegistry(ProviderOpenAI)
	if _, _, err := registry.BuildAdaptor(ProviderAnthropic); err == nil {
		t.Fatalf("expected anthropic to be absent from filtered registry")
	}

	registry.RegisterProviderSpec("custom", ProviderSpec{
		Type:           TypeCustom,
		AdaptorFactory: func() Adaptor { return &AnthropicAdaptor{BaseURL: "http://local"} },
	})
	adp, spec, err := registry.BuildAdaptor("custom")
	if err != nil {
		t.Fatalf("BuildAdaptor(custom) error: %v", err)
	}
	if spec.Name != "custom" {
		t.Fatalf("expected spec name to be set on registration, got %q", spec.Name)
	}
	if a, ok := adp.(*AnthropicAdaptor); !ok || a.BaseURL != "http://local" {
		t.Fatalf("expected factory adaptor, got %#v", adp)
	}

	registry.RegisterProviderSpec("broken", ProviderSpec{Type: TypeCustom})
	if _, _, err := registry.BuildAdaptor("broken"); err == nil {
		t.Fatalf("expected error for custom spec without factory")
	}
}
