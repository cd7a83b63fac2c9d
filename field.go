package goswag

import "github.com/reoring/goswag/rules"

// Field describes one declared attribute of a schema or one request
// argument. It is a plain value: populate it directly, with dsl builders, or
// through an adapter such as schemafile, then pass it by value into the
// converter. A field carries exactly one of a primitive Kind, an Items
// descriptor (array) or a Nested reference; when several are set, Nested
// wins over Items wins over Kind.
type Field struct {
	Kind     Kind
	Format   string // Overrides the mapped format when non-empty.
	Required bool

	// DumpDefault is used when dumping; LoadDefault when loading. Loading
	// falls back to DumpDefault when LoadDefault is nil.
	DumpDefault any
	LoadDefault any

	Restriction Restriction

	// LoadName/DumpName override the externally visible field name per
	// direction; empty means the declared name.
	LoadName string
	DumpName string

	Rules       []rules.Rule
	Description string

	// Metadata is an opaque passthrough bag merged verbatim into the output
	// property. Keys already produced by the converter win on collision.
	Metadata map[string]any

	Items  *Field
	Nested *Nested
}

// Nested points a field at another schema descriptor. Ref, when non-empty,
// is emitted as the $ref target verbatim and short-circuits registry
// resolution. Many marks a to-many relationship (array of the nested
// schema).
type Nested struct {
	Schema *Schema
	Ref    string
	Many   bool
}

// VisibleName returns the externally visible name for the field: the
// direction-specific override when set, else the declared name.
func (f *Field) VisibleName(declared string, d Direction) string {
	if d == Load && f.LoadName != "" {
		return f.LoadName
	}
	if d == Dump && f.DumpName != "" {
		return f.DumpName
	}
	return declared
}

// DefaultFor selects the default value for the given direction. Loading
// prefers LoadDefault and falls back to DumpDefault.
func (f *Field) DefaultFor(d Direction) any {
	if d == Load {
		if f.LoadDefault != nil {
			return f.LoadDefault
		}
		return f.DumpDefault
	}
	return f.DumpDefault
}
