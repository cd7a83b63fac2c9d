//go:build !gojson

// Package gojson selects the JSON codec behind openapi's Marshal helpers.
// Builds tagged gojson use goccy/go-json; default builds fall back to
// encoding/json with the same surface.
package gojson

import "encoding/json"

// Driver returns the encoding/json fallback used when the gojson build tag
// is not enabled.
func Driver() D { return D{} }

// D implements the openapi.Driver surface.
type D struct{}

func (D) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (D) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

func (D) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (D) Name() string { return "encoding/json (gojson stub)" }
