// Package openapi holds the Swagger 2.0 shaped output structs the converter
// produces: Schema for properties/object schemas and Parameter for request
// parameters. Both marshal to the exact wire layout a Swagger document
// embeds, including passthrough keys carried next to the typed ones.
package openapi

import "encoding/json"

// Schema is a Swagger 2.0 Schema Object subset: one property, one object
// schema, or a bare $ref. Kept to the vocabulary the converter emits.
type Schema struct {
	// Reference
	Ref string `json:"$ref,omitempty"`

	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`

	// Constraints
	Enum      []any    `json:"enum,omitempty"`
	Minimum   *float64 `json:"minimum,omitempty"`
	Maximum   *float64 `json:"maximum,omitempty"`
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Extra carries passthrough keys serialized next to the typed fields.
	// A typed field that is present wins over an Extra entry with the same
	// key.
	Extra map[string]any `json:"-"`
}

// MarshalJSON emits the typed fields and merges Extra in, typed keys first.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type plain Schema
	b, err := json.Marshal((*plain)(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return b, nil
	}
	return mergeExtra(b, s.Extra)
}

// Definitions is the definitions section of a Swagger document: definition
// name to object schema.
type Definitions map[string]*Schema

// Parameter is a Swagger 2.0 Parameter Object. A body parameter carries its
// payload in Schema; a non-body parameter carries a Property whose keys are
// flattened into the parameter object when marshaling. Name, In and Required
// are always serialized.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`

	// CollectionFormat is set to "multi" for array-typed non-body
	// parameters.
	CollectionFormat string `json:"collectionFormat,omitempty"`

	// Property holds the converted field property of a non-body parameter.
	// Its keys are merged into the top level at marshal time; parameter
	// keys (name, in, required, ...) win on collision.
	Property *Schema `json:"-"`
}

// MarshalJSON flattens Property into the parameter object.
func (p Parameter) MarshalJSON() ([]byte, error) {
	type plain Parameter
	b, err := json.Marshal(plain(p))
	if err != nil {
		return nil, err
	}
	if p.Property == nil {
		return b, nil
	}
	pb, err := json.Marshal(p.Property)
	if err != nil {
		return nil, err
	}
	var prop map[string]any
	if err := json.Unmarshal(pb, &prop); err != nil {
		return nil, err
	}
	return mergeExtra(b, prop)
}

// mergeExtra decodes an already-marshaled object and adds the extra keys
// that are not present yet, then re-marshals. encoding/json sorts map keys,
// so the result stays deterministic.
func mergeExtra(b []byte, extra map[string]any) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := m[k]; ok {
			continue
		}
		m[k] = v
	}
	return json.Marshal(m)
}
