package server

import (
	"net/http"

	"github.com/invopop/jsonschema"

	"github.com/YspCoder/duet/dto"
)

type contractSchema struct {
	Request  *jsonschema.Schema `json:"request"`
	Response *jsonschema.Schema `json:"response"`
}

func buildContractSchema() contractSchema {
	reflector := &jsonschema.Reflector{ExpandedStruct: true}
	return contractSchema{
		Request:  reflector.Reflect(&dto.PromptRequest{}),
		Response: reflector.Reflect(&dto.UnifiedResponse{}),
	}
}

// schemaAPI handles GET /api/ai/schema.
func (s *Server) schemaAPI(_ *http.Request) (any, *apiError) {
	return s.schema, nil
}
