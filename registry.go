package goswag

import "sort"

// Registry maps caller-assigned definition names to schema descriptors and
// answers the reverse question during conversion: is this descriptor
// registered, and under which name? The registry is owned by whoever
// assembles the Swagger document; the converter only reads it. No locking is
// performed, so do not mutate a registry while a conversion that uses it is
// running.
type Registry struct {
	schemas map[string]*Schema
	names   map[*Schema]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]*Schema),
		names:   make(map[*Schema]string),
	}
}

// Register stores the schema under name. Re-registering a name overwrites
// the previous entry; registering the same schema under a second name makes
// the newest name the one Resolve reports.
func (r *Registry) Register(name string, s *Schema) {
	if prev, ok := r.schemas[name]; ok && prev != s {
		delete(r.names, prev)
	}
	r.schemas[name] = s
	r.names[s] = name
}

// Resolve reports the definition name for the schema, if registered. A
// Clone of a registered schema resolves to its origin's name.
func (r *Registry) Resolve(s *Schema) (string, bool) {
	if s == nil {
		return "", false
	}
	if n, ok := r.names[s]; ok {
		return n, true
	}
	if s.origin != nil {
		n, ok := r.names[s.origin]
		return n, ok
	}
	return "", false
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns every registered definition name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for n := range r.schemas {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
