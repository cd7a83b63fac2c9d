package goswag

// Package goswag converts declarative schema and argument descriptors into
// Swagger 2.0 / JSON Schema fragments:
//
// - Field/Schema descriptors as plain serializable values (no reflection)
// - A Definition Registry enabling $ref reuse across nested schemas
// - Direction-aware conversion (dump vs load views of one schema)
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep the descriptor model and the registry in the root package; put the
//   converter under swagger/ and the output structs under openapi/.
// - Place the builder DSL under dsl/ and the YAML descriptor loader under
//   schemafile/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := goswag.NewRegistry()
//	reg.Register("Pet", pet)
//	js, diag := swagger.SchemaObject(pet, swagger.Options{Registry: reg})
//	params, _ := swagger.SchemaParameters(pet, goswag.InQuery, swagger.Options{})
//
// Conversion itself returns no error: every field kind is representable (an
// unknown kind falls back to string) and diagnostics are non-fatal warnings
// carried by the returned Diag.
