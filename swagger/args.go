package swagger

import (
	"sort"

	goswag "github.com/reoring/goswag"
	"github.com/reoring/goswag/openapi"
)

// Arg describes one request argument in the legacy webargs-style model:
// a native type, a source location name and a single/multi-value flag.
// Kept for callers migrating from argument mappings to schema descriptors;
// new code should declare goswag.Field values instead.
type Arg struct {
	Kind ArgKind

	// Location is the legacy source-location name (querystring, json,
	// headers, form, files). Empty or unrecognized names mean a body
	// argument.
	Location string

	// Name overrides the parameter name; empty falls back to the name the
	// caller supplies (the mapping key in ArgsParameters).
	Name string

	Required    bool
	Multiple    bool
	Default     any
	Description string
	Format      string

	// Metadata is merged verbatim into the produced property, like
	// goswag.Field metadata.
	Metadata map[string]any
}

// ArgKind is the native type of a legacy argument. The zero value falls
// back to string, mirroring the field mapping's total-ness.
type ArgKind int

const (
	ArgUnknown ArgKind = iota
	ArgString
	ArgInt
	ArgFloat
	ArgBool
	ArgBytes
	ArgList
)

// argLocations is the legacy location translation table. Exhaustive and
// exact; anything absent is a body argument.
var argLocations = map[string]goswag.Location{
	"querystring": goswag.InQuery,
	"json":        goswag.InBody,
	"headers":     goswag.InHeader,
	"form":        goswag.InFormData,
	"files":       goswag.InFormData,
}

func swaggerLocation(loc string) goswag.Location {
	if l, ok := argLocations[loc]; ok {
		return l
	}
	return goswag.InBody
}

func argTypeFormat(k ArgKind) (string, string) {
	switch k {
	case ArgInt:
		return "integer", "int32"
	case ArgFloat:
		return "number", "float"
	case ArgBool:
		return "boolean", ""
	case ArgBytes:
		return "string", "byte"
	case ArgList:
		return "array", ""
	default:
		return "string", ""
	}
}

// ArgProperty converts one legacy argument into a property. A multi-value
// argument becomes an array whose items carry the scalar type mapping,
// with description, format, default and metadata staying on the array
// itself.
func ArgProperty(a *Arg) *openapi.Schema {
	p := &openapi.Schema{}
	t, format := argTypeFormat(a.Kind)
	if a.Multiple {
		p.Type = "array"
		p.Items = &openapi.Schema{Type: t, Format: format}
	} else {
		p.Type, p.Format = t, format
	}
	if a.Format != "" {
		p.Format = a.Format
	}
	if a.Description != "" {
		p.Description = a.Description
	}
	if a.Default != nil {
		p.Default = a.Default
	}
	if len(a.Metadata) > 0 {
		p.Extra = make(map[string]any, len(a.Metadata))
		for k, v := range a.Metadata {
			p.Extra[k] = v
		}
	}
	return p
}

// ArgParameter converts one legacy argument into a parameter. name is the
// field name used when the argument declares none; for body arguments it
// keys the synthesized schema property instead, and the parameter itself is
// always named "body" with no top-level description.
func ArgParameter(a *Arg, name string) openapi.Parameter {
	prop := ArgProperty(a)
	loc := swaggerLocation(a.Location)
	if loc == goswag.InBody {
		props := make(map[string]*openapi.Schema)
		if key := a.paramName(name); key != "" {
			props[key] = prop
		}
		return openapi.Parameter{
			Name:     "body",
			In:       string(goswag.InBody),
			Required: a.Required,
			Schema:   &openapi.Schema{Type: "object", Properties: props},
		}
	}
	p := openapi.Parameter{
		Name:     a.paramName(name),
		In:       string(loc),
		Required: a.Required,
		Property: prop,
	}
	if a.Multiple && (loc == goswag.InQuery || loc == goswag.InFormData) {
		p.CollectionFormat = "multi"
	}
	return p
}

// ArgsParameters converts a named argument mapping, one parameter per
// argument, in sorted key order.
func ArgsParameters(args map[string]*Arg) []openapi.Parameter {
	names := make([]string, 0, len(args))
	for n := range args {
		names = append(names, n)
	}
	sort.Strings(names)
	params := make([]openapi.Parameter, 0, len(args))
	for _, n := range names {
		params = append(params, ArgParameter(args[n], n))
	}
	return params
}

func (a *Arg) paramName(fallback string) string {
	if a.Name != "" {
		return a.Name
	}
	return fallback
}
