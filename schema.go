package goswag

import "sort"

// Schema describes one object schema: its fields plus schema-level metadata
// and field filters. Like Field it is a plain value owned by the caller; the
// converter only reads it.
type Schema struct {
	Title       string
	Description string

	// Fields maps declared field names to their descriptors. Iteration is
	// always over sorted names so output is deterministic.
	Fields map[string]*Field

	// Only, when non-empty, restricts conversion to the listed fields.
	// Exclude removes fields after Only is applied; a name in both lists is
	// dropped.
	Only    []string
	Exclude []string

	// ImplicitOnly marks that Only was auto-derived from a declared-fields
	// list rather than written by hand. Conversion then emits a warning,
	// since implicit restriction is surprising.
	ImplicitOnly bool

	// origin links a Clone back to the schema it was copied from so the
	// registry still resolves the copy to the original's name.
	origin *Schema
}

// FieldNames returns the declared field names in sorted order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for n := range s.Fields {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EffectiveNames applies the Only and Exclude filters to the declared field
// set and returns the surviving names in sorted order. Direction filtering
// is the converter's job, not this method's.
func (s *Schema) EffectiveNames() []string {
	allowed := func(string) bool { return true }
	if len(s.Only) > 0 {
		only := make(map[string]struct{}, len(s.Only))
		for _, n := range s.Only {
			only[n] = struct{}{}
		}
		allowed = func(n string) bool { _, ok := only[n]; return ok }
	}
	excluded := make(map[string]struct{}, len(s.Exclude))
	for _, n := range s.Exclude {
		excluded[n] = struct{}{}
	}
	var names []string
	for _, n := range s.FieldNames() {
		if !allowed(n) {
			continue
		}
		if _, ok := excluded[n]; ok {
			continue
		}
		names = append(names, n)
	}
	return names
}

// Clone returns an independent copy of the schema: a fresh field map with
// copied Field values and copied filter slices. Items and Nested pointers
// inside the fields are shared. The copy remembers its origin, so a registry
// that knows the original resolves the copy to the same definition name;
// cloning a clone keeps pointing at the root origin.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	origin := s.origin
	if origin == nil {
		origin = s
	}
	c := &Schema{
		Title:        s.Title,
		Description:  s.Description,
		ImplicitOnly: s.ImplicitOnly,
		origin:       origin,
	}
	if s.Fields != nil {
		c.Fields = make(map[string]*Field, len(s.Fields))
		for n, f := range s.Fields {
			fv := *f
			c.Fields[n] = &fv
		}
	}
	if len(s.Only) > 0 {
		c.Only = append([]string(nil), s.Only...)
	}
	if len(s.Exclude) > 0 {
		c.Exclude = append([]string(nil), s.Exclude...)
	}
	return c
}
