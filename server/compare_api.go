package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// compareAPI handles POST /api/ai. Provider failures are reported inside the
// 200 body; only malformed requests produce another status.
func (s *Server) compareAPI(r *http.Request) (any, *apiError) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error("Unexpected error", "error", err)
		return nil, errInternal
	}

	prompt, apiErr := s.decodePrompt(body)
	if apiErr != nil {
		return nil, apiErr
	}

	// Provider calls run to completion even if the caller goes away.
	return s.comparer.Compare(context.WithoutCancel(r.Context()), prompt), nil
}

// decodePrompt requires a JSON body whose prompt member is a string. An
// unparsable body or a JSON null is an internal error; any other shape is a
// validation error. Empty prompts are accepted.
func (s *Server) decodePrompt(body []byte) (string, *apiError) {
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		s.logger.Error("Unexpected error", "error", err)
		return "", errInternal
	}

	switch value := payload.(type) {
	case nil:
		s.logger.Error("Unexpected error", "error", "request body is null")
		return "", errInternal
	case map[string]interface{}:
		if prompt, ok := value["prompt"].(string); ok {
			return prompt, nil
		}
	}
	return "", errInvalidPrompt
}
