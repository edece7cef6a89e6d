package http

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiSpec []byte

// rawSpec returns the embedded OpenAPI document.
func rawSpec() ([]byte, error) {
	if len(openapiSpec) == 0 {
		return nil, fmt.Errorf("embedded openapi spec is empty")
	}
	return openapiSpec, nil
}

// GetSwagger parses and validates the embedded OpenAPI document. The result
// is re-parsed per call; callers that need it repeatedly should cache it.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("loading embedded openapi spec: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating embedded openapi spec: %w", err)
	}
	return doc, nil
}
