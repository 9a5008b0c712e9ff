// Package api holds the HTTP contract of the service. Wire types, parameter
// binding and the strict handler plumbing in api.gen.go are generated from
// openapi.yaml.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=oapi-codegen.yaml openapi.yaml

// Spec is the OpenAPI document the server is generated from.
//
//go:embed openapi.yaml
var Spec []byte
