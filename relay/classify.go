package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/YspCoder/duet/dto"
)

const unknownDetail = "Unknown error"

// ClassifyError turns a failed provider call into one descriptive message
// tagged with the provider's display name. It never returns an empty string.
//
//   - *dto.LLMError: "<Provider> API error: <status> - <detail>"
//   - any other error: "<Provider> API error: <message>"
//   - nil: "<Provider> API error: Unknown error occurred"
func ClassifyError(provider string, err error) string {
	var apiErr *dto.LLMError
	switch {
	case errors.As(err, &apiErr):
		detail := errorDetail(apiErr.Body)
		if detail == "" {
			detail = apiErr.Error()
		}
		return fmt.Sprintf("%s API error: %s - %s", provider, apiErr.StatusText(), detail)
	case err != nil:
		return fmt.Sprintf("%s API error: %s", provider, err.Error())
	default:
		return fmt.Sprintf("%s API error: Unknown error occurred", provider)
	}
}

// errorDetail reads error.message, or error when it is a bare string.
// An empty result means the body named an empty message.
func errorDetail(body []byte) string {
	var envelope dto.ProviderErrorBody
	if err := json.Unmarshal(body, &envelope); err != nil {
		return unknownDetail
	}

	switch value := envelope.Error.(type) {
	case map[string]interface{}:
		message, ok := value["message"]
		if !ok {
			return unknownDetail
		}
		return stringify(message)
	case string:
		if value != "" {
			return value
		}
	}
	return unknownDetail
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
