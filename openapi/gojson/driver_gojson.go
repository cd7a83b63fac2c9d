//go:build gojson

// Package gojson selects the JSON codec behind openapi's Marshal helpers.
// Builds tagged gojson use goccy/go-json; default builds fall back to
// encoding/json with the same surface.
package gojson

import (
	j "github.com/goccy/go-json"
)

// Driver returns the JSON driver backed by goccy/go-json.
func Driver() D { return D{} }

// D implements the openapi.Driver surface.
type D struct{}

func (D) Marshal(v any) ([]byte, error) { return j.Marshal(v) }

func (D) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return j.MarshalIndent(v, prefix, indent)
}

func (D) Unmarshal(data []byte, v any) error { return j.Unmarshal(data, v) }

func (D) Name() string { return "go-json" }
