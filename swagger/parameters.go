package swagger

import (
	goswag "github.com/reoring/goswag"
	"github.com/reoring/goswag/openapi"
)

// SchemaParameters renders a schema descriptor as request parameters for
// the given location. A body location yields exactly one parameter named
// "body" wrapping the full object schema; any other location yields one
// parameter per retained field. Direction filtering applies in both shapes;
// a field filtered out contributes nothing.
func SchemaParameters(s *goswag.Schema, in goswag.Location, opts Options) ([]openapi.Parameter, Diag) {
	d := &simpleDiag{}
	if in == goswag.InBody {
		return []openapi.Parameter{bodyParameter(schemaObject(s, opts, d))}, d
	}
	var params []openapi.Parameter
	for _, name := range s.EffectiveNames() {
		f := s.Fields[name]
		if !f.Restriction.Allows(opts.Direction) {
			continue
		}
		params = append(params, fieldParameter(f, name, in, opts, d))
	}
	return params, d
}

// FieldParameters is SchemaParameters for a bare field mapping, without
// schema-level metadata or filters.
func FieldParameters(fields map[string]*goswag.Field, in goswag.Location, opts Options) ([]openapi.Parameter, Diag) {
	return SchemaParameters(&goswag.Schema{Fields: fields}, in, opts)
}

// FieldParameter converts a single field. For non-body locations the
// converted property is flattened into the parameter; for the body location
// the property is nested into a synthesized object schema keyed by the
// field's visible name, matching the legacy argument shape.
func FieldParameter(f *goswag.Field, name string, in goswag.Location, opts Options) (openapi.Parameter, Diag) {
	d := &simpleDiag{}
	return fieldParameter(f, name, in, opts, d), d
}

func fieldParameter(f *goswag.Field, name string, in goswag.Location, opts Options, d *simpleDiag) openapi.Parameter {
	prop := property(f, opts, d)
	visible := f.VisibleName(name, opts.Direction)
	if in == goswag.InBody {
		props := make(map[string]*openapi.Schema)
		if visible != "" {
			props[visible] = prop
		}
		return openapi.Parameter{
			Name:     "body",
			In:       string(goswag.InBody),
			Required: f.Required,
			Schema:   &openapi.Schema{Type: "object", Properties: props},
		}
	}
	p := openapi.Parameter{
		Name:     visible,
		In:       string(in),
		Required: f.Required,
		Property: prop,
	}
	if prop.Type == "array" {
		p.CollectionFormat = "multi"
	}
	return p
}

func bodyParameter(js *openapi.Schema) openapi.Parameter {
	return openapi.Parameter{
		Name:   "body",
		In:     string(goswag.InBody),
		Schema: js,
	}
}
