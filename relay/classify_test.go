package relay

import (
	"errors"
	"fmt"
	"testing"

	"github.com/YspCoder/duet/dto"
)

func TestClassifyErrorStructuredResponses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nested message",
			err:  &dto.LLMError{Code: 401, Body: []byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)},
			want: "OpenAI API error: 401 - Incorrect API key provided",
		},
		{
			name: "string error field",
			err:  &dto.LLMError{Code: 502, Body: []byte(`{"error":"upstream unavailable"}`)},
			want: "OpenAI API error: 502 - upstream unavailable",
		},
		{
			name: "error object without message",
			err:  &dto.LLMError{Code: 400, Body: []byte(`{"error":{"type":"invalid_request_error"}}`)},
			want: "OpenAI API error: 400 - Unknown error",
		},
		{
			name: "non JSON body",
			err:  &dto.LLMError{Code: 503, Body: []byte(`<html>Service Unavailable</html>`)},
			want: "OpenAI API error: 503 - Unknown error",
		},
		{
			name: "empty message falls back to request failure",
			err:  &dto.LLMError{Code: 500, Body: []byte(`{"error":{"message":""}}`)},
			want: "OpenAI API error: 500 - Request failed with status code 500",
		},
		{
			name: "non string message",
			err:  &dto.LLMError{Code: 429, Body: []byte(`{"error":{"message":42}}`)},
			want: "OpenAI API error: 429 - 42",
		},
		{
			name: "missing status",
			err:  &dto.LLMError{Body: []byte(`{"error":{"message":"boom"}}`)},
			want: "OpenAI API error: unknown status - boom",
		},
		{
			name: "wrapped structured error",
			err:  fmt.Errorf("call failed: %w", &dto.LLMError{Code: 404, Body: []byte(`{"error":{"message":"model not found"}}`)}),
			want: "OpenAI API error: 404 - model not found",
		},
	}

	for _, tc := range cases {
		if got := ClassifyError("OpenAI", tc.err); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestClassifyErrorGenericAndUnknown(t *testing.T) {
	if got := ClassifyError("Claude", errors.New("dial tcp: connection refused")); got != "Claude API error: dial tcp: connection refused" {
		t.Fatalf("unexpected generic message: %q", got)
	}
	if got := ClassifyError("Claude", nil); got != "Claude API error: Unknown error occurred" {
		t.Fatalf("unexpected unknown message: %q", got)
	}
}
