package schema

import (
	"github.com/invopop/jsonschema"
)

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

var (
	RewriteRequestSchema           = generateSchema[RewriteRequest]()
	AlternateUniverseRequestSchema = generateSchema[AlternateUniverseRequest]()
	QuoteSuggestionRequestSchema   = generateSchema[QuoteSuggestionRequest]()
)

// RequestSchemas maps each generation endpoint to the JSON Schema of its body.
func RequestSchemas() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"/api/rewrite":       RewriteRequestSchema,
		"/api/generate":      AlternateUniverseRequestSchema,
		"/api/suggest-quote": QuoteSuggestionRequestSchema,
	}
}
