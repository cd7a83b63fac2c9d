package swagger_test

import (
	"reflect"
	"testing"

	goswag "github.com/reoring/goswag"
	"github.com/reoring/goswag/swagger"
)

func TestSchemaParameters_Body(t *testing.T) {
	s := &goswag.Schema{
		Fields: map[string]*goswag.Field{
			"name":  {Kind: goswag.KindString, Required: true},
			"email": {Kind: goswag.KindEmail},
		},
	}

	params, _ := swagger.SchemaParameters(s, goswag.InBody, swagger.Options{})
	if len(params) != 1 {
		t.Fatalf("body must yield exactly one parameter, got %d", len(params))
	}
	p := params[0]
	if p.Name != "body" || p.In != "body" {
		t.Fatalf("body parameter identity mismatch: %+v", p)
	}

	js, _ := swagger.SchemaObject(s, swagger.Options{})
	if !reflect.DeepEqual(normalize(p.Schema), normalize(js)) {
		t.Fatalf("body schema must equal the object conversion\n got=%v\nwant=%v", normalize(p.Schema), normalize(js))
	}
}

func TestSchemaParameters_Query(t *testing.T) {
	s := &goswag.Schema{
		Fields: map[string]*goswag.Field{
			"name":  {Kind: goswag.KindString, Required: true},
			"email": {Kind: goswag.KindEmail},
		},
	}

	params, _ := swagger.SchemaParameters(s, goswag.InQuery, swagger.Options{})
	if len(params) != 2 {
		t.Fatalf("expected one parameter per field, got %d", len(params))
	}
	// EffectiveNames iterates sorted, so email comes first.
	got := normalize(params)
	want := normalize([]map[string]any{
		{"name": "email", "in": "query", "required": false, "type": "string", "format": "email"},
		{"name": "name", "in": "query", "required": true, "type": "string"},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("query parameters mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestSchemaParameters_ArrayField_CollectionFormat(t *testing.T) {
	s := &goswag.Schema{
		Fields: map[string]*goswag.Field{
			"tags": {Items: &goswag.Field{Kind: goswag.KindString}},
		},
	}
	params, _ := swagger.SchemaParameters(s, goswag.InQuery, swagger.Options{})
	if len(params) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(params))
	}
	got := normalize(params[0])
	want := normalize(map[string]any{
		"name":             "tags",
		"in":               "query",
		"required":         false,
		"collectionFormat": "multi",
		"type":             "array",
		"items":            map[string]any{"type": "string"},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("array parameter mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestSchemaParameters_DirectionFilteringApplies(t *testing.T) {
	s := &goswag.Schema{
		Fields: map[string]*goswag.Field{
			"id":   {Kind: goswag.KindInteger, Restriction: goswag.RestrictDumpOnly},
			"name": {Kind: goswag.KindString},
		},
	}
	params, _ := swagger.SchemaParameters(s, goswag.InQuery, swagger.Options{Direction: goswag.Load})
	if len(params) != 1 || params[0].Name != "name" {
		t.Fatalf("dump-only field must be filtered from load parameters, got %+v", params)
	}
}

func TestSchemaParameters_AllFiltered_Zero(t *testing.T) {
	s := &goswag.Schema{
		Fields: map[string]*goswag.Field{
			"id": {Kind: goswag.KindInteger, Restriction: goswag.RestrictDumpOnly},
		},
	}
	params, _ := swagger.SchemaParameters(s, goswag.InQuery, swagger.Options{Direction: goswag.Load})
	if len(params) != 0 {
		t.Fatalf("expected zero parameters, got %+v", params)
	}
}

func TestFieldParameter_NonBody_VisibleName(t *testing.T) {
	f := &goswag.Field{Kind: goswag.KindInteger, Required: true, LoadName: "id"}
	p, _ := swagger.FieldParameter(f, "_id", goswag.InPath, swagger.Options{Direction: goswag.Load})
	got := normalize(p)
	want := normalize(map[string]any{
		"name":     "id",
		"in":       "path",
		"required": true,
		"type":     "integer",
		"format":   "int32",
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("path parameter mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestFieldParameter_Body_WrapsProperty(t *testing.T) {
	f := &goswag.Field{Kind: goswag.KindString, Required: true, Description: "free-form note"}
	p, _ := swagger.FieldParameter(f, "note", goswag.InBody, swagger.Options{})
	got := normalize(p)
	want := normalize(map[string]any{
		"name":     "body",
		"in":       "body",
		"required": true,
		"schema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"note": map[string]any{"type": "string", "description": "free-form note"},
			},
		},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("body field parameter mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestFieldParameters_DelegatesToSchemaParameters(t *testing.T) {
	fields := map[string]*goswag.Field{
		"limit": {Kind: goswag.KindInteger},
	}
	viaFields, _ := swagger.FieldParameters(fields, goswag.InQuery, swagger.Options{})
	viaSchema, _ := swagger.SchemaParameters(&goswag.Schema{Fields: fields}, goswag.InQuery, swagger.Options{})
	if !reflect.DeepEqual(normalize(viaFields), normalize(viaSchema)) {
		t.Fatalf("field and schema parameter paths disagree\n got=%v\nwant=%v", normalize(viaFields), normalize(viaSchema))
	}
}
