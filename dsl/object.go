package dsl

import (
	"fmt"
	"sort"

	goswag "github.com/reoring/goswag"
)

type objectBuilder struct {
	title        string
	description  string
	only         []string
	exclude      []string
	implicitOnly bool
	fields       map[string]*fieldBuilder
	required     map[string]struct{}
	issues       goswag.Issues
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new schema builder.
func Object() *objectBuilder {
	return &objectBuilder{
		fields:   map[string]*fieldBuilder{},
		required: map[string]struct{}{},
	}
}

// Field declares a named field. Declaring the same name twice keeps the
// first declaration and makes Build fail.
func (b *objectBuilder) Field(name string, f *fieldBuilder) *fieldStep {
	if _, dup := b.fields[name]; dup {
		b.issues = goswag.AppendIssues(b.issues, goswag.Issue{
			Path: "/" + name, Code: goswag.CodeDuplicateKey,
			Message: fmt.Sprintf("field %q declared twice", name),
		})
		return &fieldStep{b: b, name: name}
	}
	b.fields[name] = f
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

func (f *fieldStep) Field(name string, fb *fieldBuilder) *fieldStep { return f.b.Field(name, fb) }
func (f *fieldStep) Require(names ...string) *objectBuilder         { return f.b.Require(names...) }
func (f *fieldStep) Title(t string) *objectBuilder                  { return f.b.Title(t) }
func (f *fieldStep) Description(d string) *objectBuilder            { return f.b.Description(d) }
func (f *fieldStep) Only(names ...string) *objectBuilder            { return f.b.Only(names...) }
func (f *fieldStep) Exclude(names ...string) *objectBuilder         { return f.b.Exclude(names...) }
func (f *fieldStep) ImplicitOnly() *objectBuilder                   { return f.b.ImplicitOnly() }
func (f *fieldStep) Build() (*goswag.Schema, error)                 { return f.b.Build() }
func (f *fieldStep) MustBuild() *goswag.Schema                      { return f.b.MustBuild() }

// Require marks one or more declared fields as required. Names that were
// never declared make Build fail.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// Title sets the schema title.
func (b *objectBuilder) Title(t string) *objectBuilder {
	b.title = t
	return b
}

// Description sets the schema description.
func (b *objectBuilder) Description(d string) *objectBuilder {
	b.description = d
	return b
}

// Only restricts conversion to the listed fields.
func (b *objectBuilder) Only(names ...string) *objectBuilder {
	b.only = append(b.only, names...)
	return b
}

// Exclude removes the listed fields from conversion.
func (b *objectBuilder) Exclude(names ...string) *objectBuilder {
	b.exclude = append(b.exclude, names...)
	return b
}

// ImplicitOnly marks the Only list as auto-derived, which makes conversion
// emit its warning.
func (b *objectBuilder) ImplicitOnly() *objectBuilder {
	b.implicitOnly = true
	return b
}

// Build validates the accumulated declarations and returns the schema.
func (b *objectBuilder) Build() (*goswag.Schema, error) {
	iss := b.issues
	var unknown []string
	for n := range b.required {
		if _, ok := b.fields[n]; !ok {
			unknown = append(unknown, n)
		}
	}
	sort.Strings(unknown)
	for _, n := range unknown {
		iss = goswag.AppendIssues(iss, goswag.Issue{
			Path: "/" + n, Code: goswag.CodeUnknownField,
			Message: fmt.Sprintf("required field %q was never declared", n),
		})
	}
	if len(iss) > 0 {
		return nil, iss
	}

	s := &goswag.Schema{
		Title:        b.title,
		Description:  b.description,
		ImplicitOnly: b.implicitOnly,
	}
	if len(b.only) > 0 {
		s.Only = append([]string(nil), b.only...)
	}
	if len(b.exclude) > 0 {
		s.Exclude = append([]string(nil), b.exclude...)
	}
	s.Fields = make(map[string]*goswag.Field, len(b.fields))
	for name, fb := range b.fields {
		f := fb.Build()
		if _, ok := b.required[name]; ok {
			f.Required = true
		}
		s.Fields[name] = f
	}
	return s, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() *goswag.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
