// Package dto defines standardized request and response payloads.
package dto

import "fmt"

// LLMError is a non-2xx provider response, kept with its raw body for classification.
type LLMError struct {
	Code     int    `json:"code"`
	Body     []byte `json:"-"`
	Provider string `json:"provider"`
}

func (e *LLMError) Error() string {
	if e == nil {
		return ""
	}
	if e.Code == 0 {
		return "Request failed"
	}
	return fmt.Sprintf("Request failed with status code %d", e.Code)
}

// StatusText returns the textual status of the failed call, or "unknown status".
func (e *LLMError) StatusText() string {
	if e == nil || e.Code == 0 {
		return "unknown status"
	}
	return fmt.Sprint(e.Code)
}

// ProviderErrorBody is the structured error envelope both providers return.
// Error is left raw because some gateways send a bare string instead of an object.
type ProviderErrorBody struct {
	Error interface{} `json:"error"`
}

// ExtractionError reports a well-formed response whose text could not be located.
type ExtractionError struct {
	Provider  string
	Structure string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("Failed to extract text from %s response. Response structure: %s", e.Provider, e.Structure)
}
