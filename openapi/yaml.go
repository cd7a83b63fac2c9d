package openapi

import (
	"io"

	"gopkg.in/yaml.v3"
)

// EncodeYAML writes v to w as YAML. The value is round-tripped through its
// JSON representation first, so YAML keys match the JSON wire names ($ref,
// collectionFormat, ...) and passthrough keys are included. Map keys come
// out sorted, keeping the output deterministic.
func EncodeYAML(w io.Writer, v any) error {
	plain, err := jsonPlain(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plain); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// MarshalYAML lets a Schema be embedded in any yaml.v3 document with the
// same keys it would have in JSON.
func (s *Schema) MarshalYAML() (any, error) { return jsonPlain(s) }

// MarshalYAML lets a Parameter be embedded in any yaml.v3 document with the
// same keys it would have in JSON.
func (p Parameter) MarshalYAML() (any, error) { return jsonPlain(p) }

// jsonPlain reduces v to plain Go values (maps, slices, primitives) via the
// configured JSON driver.
func jsonPlain(v any) (any, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
