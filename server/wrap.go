package server

import (
	"encoding/json"
	"net/http"

	"github.com/YspCoder/duet/dto"
)

type apiError struct {
	Status  int
	Message string
}

var (
	errInvalidPrompt    = &apiError{Status: http.StatusBadRequest, Message: "Invalid prompt type"}
	errInternal         = &apiError{Status: http.StatusInternalServerError, Message: "Internal server error"}
	errMethodNotAllowed = &apiError{Status: http.StatusMethodNotAllowed, Message: "Method not allowed"}
)

type handler func(r *http.Request) (any, *apiError)

func (s *Server) wrap(route string, h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, apiErr := s.invoke(h, r)
		if apiErr != nil {
			s.writeJSON(w, route, apiErr.Status, dto.ErrorResponse{Error: apiErr.Message})
			return
		}
		s.writeJSON(w, route, http.StatusOK, data)
	}
}

func (s *Server) wrapMethod(route, method string, h handler) http.HandlerFunc {
	return s.wrap(route, func(r *http.Request) (any, *apiError) {
		if r.Method != method {
			return nil, errMethodNotAllowed
		}
		return h(r)
	})
}

// invoke turns a handler panic into a 500 without exposing details.
func (s *Server) invoke(h handler, r *http.Request) (data any, apiErr *apiError) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("Unexpected error", "path", r.URL.Path, "panic", rec)
			data, apiErr = nil, errInternal
		}
	}()
	return h(r)
}

func (s *Server) writeJSON(w http.ResponseWriter, route string, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("Failed to write response", "route", route, "error", err)
	}
	s.metrics.ObserveResponse(route, status)
}
