package swagger_test

import (
	"reflect"
	"testing"

	"github.com/reoring/goswag/swagger"
)

func TestArgParameter_LocationTable(t *testing.T) {
	cases := []struct {
		location string
		in       string
	}{
		{"querystring", "query"},
		{"json", "body"},
		{"headers", "header"},
		{"form", "formData"},
		{"files", "formData"},
		{"", "body"},
		{"cookies", "body"},
	}
	for _, c := range cases {
		p := swagger.ArgParameter(&swagger.Arg{Kind: swagger.ArgString, Location: c.location}, "x")
		if p.In != c.in {
			t.Fatalf("location %q: got in=%q, want %q", c.location, p.In, c.in)
		}
	}
}

func TestArgProperty_KindTable(t *testing.T) {
	cases := []struct {
		kind   swagger.ArgKind
		typ    string
		format string
	}{
		{swagger.ArgUnknown, "string", ""},
		{swagger.ArgString, "string", ""},
		{swagger.ArgInt, "integer", "int32"},
		{swagger.ArgFloat, "number", "float"},
		{swagger.ArgBool, "boolean", ""},
		{swagger.ArgBytes, "string", "byte"},
		{swagger.ArgList, "array", ""},
	}
	for _, c := range cases {
		p := swagger.ArgProperty(&swagger.Arg{Kind: c.kind})
		if p.Type != c.typ || p.Format != c.format {
			t.Fatalf("kind %v: got type=%q format=%q, want type=%q format=%q", c.kind, p.Type, p.Format, c.typ, c.format)
		}
	}
}

func TestArgParameter_MultiValueQuery(t *testing.T) {
	a := &swagger.Arg{Kind: swagger.ArgInt, Location: "querystring", Multiple: true}
	p := swagger.ArgParameter(a, "ids")
	got := normalize(p)
	want := normalize(map[string]any{
		"name":             "ids",
		"in":               "query",
		"required":         false,
		"collectionFormat": "multi",
		"type":             "array",
		"items":            map[string]any{"type": "integer", "format": "int32"},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("multi-value parameter mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestArgParameter_MultiValueHeader_NoCollectionFormat(t *testing.T) {
	a := &swagger.Arg{Kind: swagger.ArgString, Location: "headers", Multiple: true}
	p := swagger.ArgParameter(a, "accept")
	if p.CollectionFormat != "" {
		t.Fatalf("collectionFormat applies to query and formData only, got %q", p.CollectionFormat)
	}
	if p.Property == nil || p.Property.Type != "array" {
		t.Fatalf("multi-value header still converts to an array, got %+v", p.Property)
	}
}

func TestArgParameter_Body(t *testing.T) {
	a := &swagger.Arg{Kind: swagger.ArgString, Location: "json", Required: true, Description: "display name"}
	p := swagger.ArgParameter(a, "name")
	got := normalize(p)
	want := normalize(map[string]any{
		"name":     "body",
		"in":       "body",
		"required": true,
		"schema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string", "description": "display name"},
			},
		},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("body argument mismatch\n got=%v\nwant=%v", got, want)
	}
	// The description stays on the property; the parameter itself carries none.
	m, _ := got.(map[string]any)
	if _, ok := m["description"]; ok {
		t.Fatalf("body parameter must not carry a top-level description: %v", m)
	}
}

func TestArgParameter_NameOverride(t *testing.T) {
	a := &swagger.Arg{Kind: swagger.ArgString, Location: "querystring", Name: "q"}
	p := swagger.ArgParameter(a, "search")
	if p.Name != "q" {
		t.Fatalf("argument name must win over the mapping key, got %q", p.Name)
	}

	body := swagger.ArgParameter(&swagger.Arg{Kind: swagger.ArgString, Location: "json", Name: "payload"}, "fallback")
	if _, ok := body.Schema.Properties["payload"]; !ok {
		t.Fatalf("body property key must honor the name override, got %v", body.Schema.Properties)
	}
}

func TestArgProperty_Decorations(t *testing.T) {
	a := &swagger.Arg{
		Kind:        swagger.ArgInt,
		Format:      "int64",
		Description: "page size",
		Default:     20,
		Metadata:    map[string]any{"x-example": 50},
	}
	p := swagger.ArgProperty(a)
	got := normalize(p)
	want := normalize(map[string]any{
		"type":        "integer",
		"format":      "int64",
		"description": "page size",
		"default":     20,
		"x-example":   50,
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decorated property mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestArgProperty_MultipleKeepsDecorationsOnArray(t *testing.T) {
	a := &swagger.Arg{Kind: swagger.ArgBool, Multiple: true, Description: "flags"}
	p := swagger.ArgProperty(a)
	if p.Type != "array" || p.Description != "flags" {
		t.Fatalf("array decoration mismatch: %+v", p)
	}
	if p.Items == nil || p.Items.Type != "boolean" || p.Items.Description != "" {
		t.Fatalf("items must carry only the scalar mapping: %+v", p.Items)
	}
}

func TestArgsParameters_SortedByName(t *testing.T) {
	args := map[string]*swagger.Arg{
		"zeta":  {Kind: swagger.ArgString, Location: "querystring"},
		"alpha": {Kind: swagger.ArgString, Location: "querystring"},
		"mid":   {Kind: swagger.ArgString, Location: "querystring"},
	}
	params := swagger.ArgsParameters(args)
	var names []string
	for _, p := range params {
		names = append(names, p.Name)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "mid", "zeta"}) {
		t.Fatalf("expected sorted parameter order, got %v", names)
	}
}
