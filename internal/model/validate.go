package model

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed render_request.schema.json
var renderRequestSchema []byte

// ValidateRenderRequest validates a raw render/export request body against
// the embedded schema. The schema is embedded rather than loaded from disk
// so validation behaves the same regardless of working directory.
func ValidateRenderRequest(body []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(renderRequestSchema)
	docLoader := gojsonschema.NewBytesLoader(body)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
