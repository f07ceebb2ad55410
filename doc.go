// Package konnect provides:
//
// - Immutable Connect-style schema descriptors (type, name, version, optional, default, doc, parameters)
// - A chainable SchemaBuilder that reports misuse through Issues instead of panicking
// - A stable error model via Issues (JSON Pointer, code, message)
// - Projection to and from the Confluent JSON Schema dialect
//
// Design policy:
// - Keep only public APIs in the root package; logical types live under logical/.
// - Put descriptor file loading under source/ and the CLI under cmd/konnect.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := konnect.StringBuilder().Name("com.example.Sku").Version(2).Optional().MustBuild()
//	if err := konnect.ValidateValue(s, "A-100"); err != nil { ... }
//	j, err := s.JSONSchema()
//
//	wire, err := logical.DateFromLogical(logical.DateSchema, day)
package konnect
