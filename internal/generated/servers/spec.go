// Package servers holds the HTTP contract of the logistics API: the embedded
// OpenAPI document, the request and response models, and the echo wrapper
// that binds path and query parameters before calling a ServerInterface.
package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the embedded OpenAPI document as YAML.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return doc, nil
}
