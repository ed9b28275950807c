package schema

import (
	_ "embed"
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

// Schema validates one-shot input documents.
type Schema struct {
	schema *gojsonschema.Schema
}

//go:embed request.json
var requestSchema json.RawMessage
var requestSchemaLoader = gojsonschema.NewBytesLoader(requestSchema)

// NewRequestSchema compiles the embedded request document schema.
func NewRequestSchema() (*Schema, error) {
	schema, err := gojsonschema.NewSchema(requestSchemaLoader)
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// Validate checks the given document against the schema.
func (s *Schema) Validate(data []byte) (*gojsonschema.Result, error) {
	return s.schema.Validate(gojsonschema.NewBytesLoader(data))
}
