package dsl

import (
	goswag "github.com/reoring/goswag"
	"github.com/reoring/goswag/rules"
)

// fieldBuilder accumulates one field descriptor. Values are written through
// chained calls and copied out by Build, so one builder can seed several
// fields.
type fieldBuilder struct {
	f goswag.Field
}

func ofKind(k goswag.Kind) *fieldBuilder {
	return &fieldBuilder{f: goswag.Field{Kind: k}}
}

// String creates a string field builder.
func String() *fieldBuilder { return ofKind(goswag.KindString) }

// Integer creates an integer field builder.
func Integer() *fieldBuilder { return ofKind(goswag.KindInteger) }

// Number creates a format-free number field builder.
func Number() *fieldBuilder { return ofKind(goswag.KindNumber) }

// Float creates a float field builder.
func Float() *fieldBuilder { return ofKind(goswag.KindFloat) }

// Decimal creates a decimal field builder.
func Decimal() *fieldBuilder { return ofKind(goswag.KindDecimal) }

// Bool creates a boolean field builder.
func Bool() *fieldBuilder { return ofKind(goswag.KindBool) }

// UUID creates a uuid-formatted string field builder.
func UUID() *fieldBuilder { return ofKind(goswag.KindUUID) }

// DateTime creates a date-time-formatted string field builder.
func DateTime() *fieldBuilder { return ofKind(goswag.KindDateTime) }

// Date creates a date-formatted string field builder.
func Date() *fieldBuilder { return ofKind(goswag.KindDate) }

// Time creates a time-of-day string field builder.
func Time() *fieldBuilder { return ofKind(goswag.KindTime) }

// Email creates an email-formatted string field builder.
func Email() *fieldBuilder { return ofKind(goswag.KindEmail) }

// URL creates a url-formatted string field builder.
func URL() *fieldBuilder { return ofKind(goswag.KindURL) }

// Bytes creates a base64 string field builder.
func Bytes() *fieldBuilder { return ofKind(goswag.KindBytes) }

// Raw creates a field builder with no declared kind; it converts to a plain
// string property.
func Raw() *fieldBuilder { return ofKind(goswag.KindUnknown) }

// List creates an array field builder around an element builder.
func List(elem *fieldBuilder) *fieldBuilder {
	return &fieldBuilder{f: goswag.Field{Items: elem.Build()}}
}

// Nested creates a field builder embedding another schema.
func Nested(s *goswag.Schema) *fieldBuilder {
	return &fieldBuilder{f: goswag.Field{Nested: &goswag.Nested{Schema: s}}}
}

// NestedMany creates a field builder embedding a to-many schema.
func NestedMany(s *goswag.Schema) *fieldBuilder {
	return &fieldBuilder{f: goswag.Field{Nested: &goswag.Nested{Schema: s, Many: true}}}
}

// NestedRef creates a field builder that emits the given reference target
// verbatim.
func NestedRef(ref string) *fieldBuilder {
	return &fieldBuilder{f: goswag.Field{Nested: &goswag.Nested{Ref: ref}}}
}

// Required marks the field as required.
func (b *fieldBuilder) Required() *fieldBuilder {
	b.f.Required = true
	return b
}

// DumpOnly restricts the field to dump conversions.
func (b *fieldBuilder) DumpOnly() *fieldBuilder {
	b.f.Restriction = goswag.RestrictDumpOnly
	return b
}

// LoadOnly restricts the field to load conversions.
func (b *fieldBuilder) LoadOnly() *fieldBuilder {
	b.f.Restriction = goswag.RestrictLoadOnly
	return b
}

// Default sets the dump-side default, which load conversions also fall back
// to when no load default is set.
func (b *fieldBuilder) Default(v any) *fieldBuilder {
	b.f.DumpDefault = v
	return b
}

// LoadDefault sets the load-side default.
func (b *fieldBuilder) LoadDefault(v any) *fieldBuilder {
	b.f.LoadDefault = v
	return b
}

// LoadName overrides the visible field name for load conversions.
func (b *fieldBuilder) LoadName(name string) *fieldBuilder {
	b.f.LoadName = name
	return b
}

// DumpName overrides the visible field name for dump conversions.
func (b *fieldBuilder) DumpName(name string) *fieldBuilder {
	b.f.DumpName = name
	return b
}

// Format overrides the format the field kind maps to.
func (b *fieldBuilder) Format(format string) *fieldBuilder {
	b.f.Format = format
	return b
}

// Description sets the property description.
func (b *fieldBuilder) Description(d string) *fieldBuilder {
	b.f.Description = d
	return b
}

// Meta adds one metadata passthrough entry.
func (b *fieldBuilder) Meta(key string, v any) *fieldBuilder {
	if b.f.Metadata == nil {
		b.f.Metadata = make(map[string]any)
	}
	b.f.Metadata[key] = v
	return b
}

// OneOf attaches a one-of rule over the given choices.
func (b *fieldBuilder) OneOf(choices ...any) *fieldBuilder {
	return b.Rule(rules.Choices(choices...))
}

// MinLength attaches a lower string-length bound.
func (b *fieldBuilder) MinLength(n int) *fieldBuilder {
	return b.Rule(rules.Length{Min: rules.Int(n)})
}

// MaxLength attaches an upper string-length bound.
func (b *fieldBuilder) MaxLength(n int) *fieldBuilder {
	return b.Rule(rules.Length{Max: rules.Int(n)})
}

// Min attaches a lower numeric bound.
func (b *fieldBuilder) Min(v float64) *fieldBuilder {
	return b.Rule(rules.Range{Min: rules.Float(v)})
}

// Max attaches an upper numeric bound.
func (b *fieldBuilder) Max(v float64) *fieldBuilder {
	return b.Rule(rules.Range{Max: rules.Float(v)})
}

// Pattern attaches a regular-expression rule.
func (b *fieldBuilder) Pattern(p string) *fieldBuilder {
	return b.Rule(rules.Regexp{Pattern: p})
}

// Rule attaches any rule value, including kinds the converter does not
// recognize.
func (b *fieldBuilder) Rule(r rules.Rule) *fieldBuilder {
	b.f.Rules = append(b.f.Rules, r)
	return b
}

// Build returns an independent copy of the accumulated field descriptor.
func (b *fieldBuilder) Build() *goswag.Field {
	f := b.f
	if len(b.f.Rules) > 0 {
		f.Rules = append([]rules.Rule(nil), b.f.Rules...)
	}
	if len(b.f.Metadata) > 0 {
		f.Metadata = make(map[string]any, len(b.f.Metadata))
		for k, v := range b.f.Metadata {
			f.Metadata[k] = v
		}
	}
	return &f
}
