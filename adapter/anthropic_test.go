package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/YspCoder/duet/dto"
)

func TestAnthropicSetupHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://example.com", nil)
	if err := (&AnthropicAdaptor{}).SetupHeaders(req, &ProviderConfig{APIKey: "ak-test"}); err != nil {
		t.Fatalf("SetupHeaders error: %v", err)
	}
	if got := req.Header.Get("x-api-key"); got != "ak-test" {
		t.Fatalf("unexpected api key header: %q", got)
	}
	if got := req.Header.Get("anthropic-version"); got != "2023-06-01" {
		t.Fatalf("unexpected version header: %q", got)
	}
}

func TestAnthropicGetRequestURL(t *testing.T) {
	got, err := (&AnthropicAdaptor{}).GetRequestURL(&ProviderConfig{})
	if err != nil {
		t.Fatalf("GetRequestURL error: %v", err)
	}
	if got != "https://api.anthropic.com/v1/messages" {
		t.Fatalf("unexpected default url: %q", got)
	}
}

func TestAnthropicConvertChatRequest(t *testing.T) {
	body, err := (&AnthropicAdaptor{}).ConvertChatRequest(context.Background(), &ProviderConfig{}, dto.NewPromptRequest("claude-3-sonnet-20240229", 1000, "hello"))
	if err != nil {
		t.Fatalf("ConvertChatRequest error: %v", err)
	}
	want := `{"model":"claude-3-sonnet-20240229","max_tokens":1000,"messages":[{"role":"user","content":"hello"}]}`
	if string(body) != want {
		t.Fatalf("unexpected body:\n got %s\nwant %s", body, want)
	}
}

func TestAnthropicConvertChatResponse(t *testing.T) {
	a := &AnthropicAdaptor{}
	cfg := &ProviderConfig{DisplayName: "Claude"}
	ctx := context.Background()

	cases := []struct {
		name string
		body string
		want string
	}{
		{"text block", `{"content":[{"type":"text","text":"hello"}]}`, "hello"},
		{"text block after tool use", `{"content":[{"type":"tool_use","id":"t1"},{"type":"text","text":"second"}]}`, "second"},
		{"fallback to first element", `{"content":[{"type":"other","text":"first"},{"type":"image"}]}`, "first"},
		{"unread fields of any type", `{"id":1,"type":["message"],"usage":"n/a","content":[{"type":"text","text":"hi"}]}`, "hi"},
		{"odd blocks before text", `{"content":[{"type":"tool_use","input":7,"text":{"x":1}},{"type":"text","text":"ok"}]}`, "ok"},
	}
	for _, tc := range cases {
		result, err := a.ConvertChatResponse(ctx, cfg, []byte(tc.body))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if result.Text == nil || *result.Text != tc.want {
			t.Fatalf("%s: unexpected text %v", tc.name, result.Text)
		}
	}
}

func TestAnthropicConvertChatResponseWithoutText(t *testing.T) {
	a := &AnthropicAdaptor{}
	cfg := &ProviderConfig{DisplayName: "Claude"}

	for _, body := range []string{
		`{"id":"msg_1","content":[{"type":"image"}]}`,
		`{"id":"msg_1","content":[]}`,
		`{"id":"msg_1"}`,
		`{"content":[{"type":"text","text":""}]}`,
		`{"content":"hello"}`,
		`{"content":{"type":"text","text":"hello"}}`,
		`{"content":null}`,
		`{"content":[{"type":"text","text":5}]}`,
		`{"content":["hello"]}`,
		`[]`,
	} {
		_, err := a.ConvertChatResponse(context.Background(), cfg, []byte(body))
		var extractErr *dto.ExtractionError
		if !errors.As(err, &extractErr) {
			t.Fatalf("body %s: expected extraction error, got %v", body, err)
		}
		if !strings.HasPrefix(err.Error(), "Failed to extract text from Claude response. Response structure: ") {
			t.Fatalf("unexpected message: %q", err.Error())
		}
		if !strings.HasSuffix(err.Error(), body) {
			t.Fatalf("message should carry the response structure %s, got %q", body, err.Error())
		}
	}
}

func TestAnthropicConvertChatResponseRejectsNonJSON(t *testing.T) {
	_, err := (&AnthropicAdaptor{}).ConvertChatResponse(context.Background(), &ProviderConfig{}, []byte(`<html>`))
	var extractErr *dto.ExtractionError
	if err == nil || errors.As(err, &extractErr) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestAnthropicConvertChatResponseCompactsStructure(t *testing.T) {
	_, err := (&AnthropicAdaptor{}).ConvertChatResponse(context.Background(), &ProviderConfig{}, []byte("{\n  \"content\": []\n}"))
	if err == nil || !strings.HasSuffix(err.Error(), `{"content":[]}`) {
		t.Fatalf("expected compact structure in error, got %v", err)
	}
}
