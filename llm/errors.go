package llm

import "fmt"

// ErrorType categorizes construction failures.
type ErrorType string

const (
	ErrorTypeProvider       ErrorType = "provider_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeInvalidInput   ErrorType = "invalid_input"
)

// LLMError is returned when a provider client cannot be built.
type LLMError struct {
	Type    ErrorType
	Message string
	Err     error
}

// NewLLMError creates a new LLMError.
func NewLLMError(errType ErrorType, message string, err error) *LLMError {
	return &LLMError{Type: errType, Message: message, Err: err}
}

func (e *LLMError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *LLMError) Unwrap() error {
	return e.Err
}
