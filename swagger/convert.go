// Package swagger converts goswag field and schema descriptors into
// Swagger 2.0 properties, object schemas and request parameters.
//
// Conversion never fails: every field kind maps to some property (unknown
// kinds become plain strings) and all diagnostics are non-fatal warnings on
// the returned Diag. The one caller obligation is recursion safety: a
// schema that nests itself, directly or through another schema, must be
// registered in the Options registry before conversion, because inline
// expansion of a cyclic unregistered schema does not terminate.
package swagger

import (
	"reflect"
	"sort"

	goswag "github.com/reoring/goswag"
	"github.com/reoring/goswag/openapi"
	"github.com/reoring/goswag/rules"
)

// ImplicitFieldsWarning is emitted when a schema's field restriction was
// auto-derived from its declared-fields list rather than written by hand.
const ImplicitFieldsWarning = "Only explicitly-declared fields will be included in the Schema Object."

// Property converts one field descriptor into one property.
func Property(f *goswag.Field, opts Options) (*openapi.Schema, Diag) {
	d := &simpleDiag{}
	return property(f, opts, d), d
}

// SchemaObject converts a schema descriptor into a full object schema:
// filtered properties, sorted required list, title and description.
func SchemaObject(s *goswag.Schema, opts Options) (*openapi.Schema, Diag) {
	d := &simpleDiag{}
	return schemaObject(s, opts, d), d
}

// FieldsObject builds an object schema from a bare field mapping, as used
// for body parameters synthesized from loose fields.
func FieldsObject(fields map[string]*goswag.Field, opts Options) (*openapi.Schema, Diag) {
	d := &simpleDiag{}
	return schemaObject(&goswag.Schema{Fields: fields}, opts, d), d
}

func property(f *goswag.Field, opts Options, d *simpleDiag) *openapi.Schema {
	switch {
	case f.Nested != nil:
		return nestedProperty(f, opts, d)
	case f.Items != nil:
		p := &openapi.Schema{Type: "array", Items: property(f.Items, opts, d)}
		applyRules(p, f.Rules)
		decorate(p, f, opts.Direction)
		return p
	default:
		t, format := typeFormat(f.Kind)
		p := &openapi.Schema{Type: t, Format: format}
		applyRules(p, f.Rules)
		decorate(p, f, opts.Direction)
		return p
	}
}

// nestedProperty resolves a nested-schema field. An explicit Ref wins, then
// a registry hit, then inline expansion. A to-many relationship wraps the
// result in an array property that keeps the field's own decorations.
func nestedProperty(f *goswag.Field, opts Options, d *simpleDiag) *openapi.Schema {
	n := f.Nested
	var inner *openapi.Schema
	switch {
	case n.Ref != "":
		inner = &openapi.Schema{Ref: n.Ref}
	case opts.Registry != nil:
		if name, ok := opts.Registry.Resolve(n.Schema); ok {
			inner = &openapi.Schema{Ref: "#/definitions/" + name}
		}
	}
	if inner == nil {
		inner = schemaObject(n.Schema, opts, d)
	}
	if !n.Many {
		return inner
	}
	p := &openapi.Schema{Type: "array", Items: inner}
	applyRules(p, f.Rules)
	decorate(p, f, opts.Direction)
	return p
}

func schemaObject(s *goswag.Schema, opts Options, d *simpleDiag) *openapi.Schema {
	out := &openapi.Schema{Type: "object"}
	if s == nil {
		return out
	}
	if s.ImplicitOnly && len(s.Only) > 0 {
		d.warnf(ImplicitFieldsWarning)
	}
	props := make(map[string]*openapi.Schema)
	var required []string
	for _, name := range s.EffectiveNames() {
		f := s.Fields[name]
		if !f.Restriction.Allows(opts.Direction) {
			continue
		}
		visible := f.VisibleName(name, opts.Direction)
		props[visible] = property(f, opts, d)
		if f.Required {
			required = append(required, visible)
		}
	}
	if len(props) > 0 {
		out.Properties = props
	}
	if len(required) > 0 {
		sort.Strings(required)
		out.Required = required
	}
	out.Title = s.Title
	out.Description = s.Description
	return out
}

// typeFormat maps a field kind to its Swagger type and format. Total: any
// kind this switch does not know degrades to a plain string.
func typeFormat(k goswag.Kind) (string, string) {
	switch k {
	case goswag.KindInteger:
		return "integer", "int32"
	case goswag.KindNumber, goswag.KindDecimal:
		return "number", ""
	case goswag.KindFloat:
		return "number", "float"
	case goswag.KindBool:
		return "boolean", ""
	case goswag.KindUUID:
		return "string", "uuid"
	case goswag.KindDateTime:
		return "string", "date-time"
	case goswag.KindDate:
		return "string", "date"
	case goswag.KindTime:
		return "string", ""
	case goswag.KindEmail:
		return "string", "email"
	case goswag.KindURL:
		return "string", "url"
	case goswag.KindBytes:
		return "string", "byte"
	default:
		return "string", ""
	}
}

// decorate applies the field-level attributes shared by every property
// shape: format hint, description, direction-selected default and the
// metadata passthrough.
func decorate(p *openapi.Schema, f *goswag.Field, dir goswag.Direction) {
	if f.Format != "" {
		p.Format = f.Format
	}
	if f.Description != "" {
		p.Description = f.Description
	}
	if v := f.DefaultFor(dir); v != nil {
		p.Default = v
	}
	if len(f.Metadata) > 0 {
		p.Extra = make(map[string]any, len(f.Metadata))
		for k, v := range f.Metadata {
			p.Extra[k] = v
		}
	}
}

// applyRules writes the recognized rule kinds onto the property.
// Unrecognized kinds are skipped. Several OneOf rules intersect, in first
// rule order, because a value must satisfy every attached rule.
func applyRules(p *openapi.Schema, rs []rules.Rule) {
	var enum []any
	enumSeen := false
	for _, r := range rs {
		switch r := r.(type) {
		case rules.OneOf:
			if !enumSeen {
				enum = append([]any(nil), r.Choices...)
				enumSeen = true
			} else {
				enum = intersect(enum, r.Choices)
			}
		case rules.Length:
			if r.Min != nil {
				v := *r.Min
				p.MinLength = &v
			}
			if r.Max != nil {
				v := *r.Max
				p.MaxLength = &v
			}
		case rules.Range:
			if r.Min != nil {
				v := *r.Min
				p.Minimum = &v
			}
			if r.Max != nil {
				v := *r.Max
				p.Maximum = &v
			}
		case rules.Regexp:
			if r.Pattern != "" {
				p.Pattern = r.Pattern
			}
		}
	}
	if enumSeen && len(enum) > 0 {
		p.Enum = enum
	}
}

func intersect(prev, next []any) []any {
	var out []any
	for _, v := range prev {
		if containsValue(next, v) {
			out = append(out, v)
		}
	}
	return out
}

func containsValue(vs []any, want any) bool {
	for _, v := range vs {
		if reflect.DeepEqual(v, want) {
			return true
		}
	}
	return false
}
