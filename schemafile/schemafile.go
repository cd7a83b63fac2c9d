// Package schemafile loads schema descriptors from YAML files, as the
// adapter between hand-written schema declarations and the goswag converter.
//
// A schema file is a YAML stream. Every document carries a schemas mapping
// from definition name to schema body:
//
//	schemas:
//	  Category:
//	    fields:
//	      id:   {type: integer, required: true}
//	      name: {type: string}
//	  Pet:
//	    title: a Pet
//	    fields:
//	      category: {nested: Category}
//	      tags:     {nested: Category, many: true}
//	      status:   {type: string, enum: [available, pending, sold]}
//
// Loading is strict where the converter is lenient: unknown type names,
// unknown schema-level keys, duplicated YAML keys and unresolved nested
// references are all reported as goswag.Issues with a path into the file,
// because a typo in a schema file should surface at load time rather than
// degrade quietly in the produced document. Unknown FIELD-level keys are
// the one exception; they become Metadata and pass through to the output
// property.
//
// Nested references may point forward or form cycles across documents.
// Register the loaded schemas before converting them so cyclic shapes come
// out as $ref entries.
package schemafile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	goswag "github.com/reoring/goswag"
	"github.com/reoring/goswag/rules"
)

// Load reads a schema-file stream and returns the declared schemas keyed by
// definition name. On any problem it returns nil and a goswag.Issues error
// carrying every issue found, not only the first.
func Load(r io.Reader) (map[string]*goswag.Schema, error) {
	var iss goswag.Issues

	bodies := make(map[string]map[string]any)
	var names []string
	docs := newDocReader(r)
	for i := 0; ; i++ {
		doc, err := docs.next()
		if err == io.EOF {
			break
		}
		docPath := fmt.Sprintf("/doc/%d", i)
		if err != nil {
			code := goswag.CodeInvalidDocument
			if _, ok := err.(*DuplicateKeyError); ok {
				code = goswag.CodeDuplicateKey
			}
			iss = goswag.AppendIssues(iss, goswag.Issue{Path: docPath, Code: code, Message: err.Error(), Cause: err})
			break
		}
		if doc == nil {
			continue
		}
		root, ok := doc.(map[string]any)
		if !ok {
			iss = goswag.AppendIssues(iss, goswag.Issue{Path: docPath, Code: goswag.CodeInvalidDocument, Message: "document root must be a mapping"})
			continue
		}
		for _, key := range sortedKeys(root) {
			if key != "schemas" {
				iss = goswag.AppendIssues(iss, goswag.Issue{Path: docPath + "/" + key, Code: goswag.CodeInvalidDocument, Message: fmt.Sprintf("unknown document key %q", key)})
			}
		}
		schemas, ok := root["schemas"].(map[string]any)
		if !ok {
			iss = goswag.AppendIssues(iss, goswag.Issue{Path: docPath, Code: goswag.CodeInvalidDocument, Message: "document must carry a schemas mapping"})
			continue
		}
		for _, name := range sortedKeys(schemas) {
			body, ok := schemas[name].(map[string]any)
			if !ok {
				iss = goswag.AppendIssues(iss, goswag.Issue{Path: "/schemas/" + name, Code: goswag.CodeInvalidDocument, Message: "schema body must be a mapping"})
				continue
			}
			if _, dup := bodies[name]; dup {
				iss = goswag.AppendIssues(iss, goswag.Issue{Path: "/schemas/" + name, Code: goswag.CodeDuplicateKey, Message: fmt.Sprintf("schema %q declared twice", name)})
				continue
			}
			bodies[name] = body
			names = append(names, name)
		}
	}

	// Shells first so nested references resolve regardless of declaration
	// order, including cycles.
	out := make(map[string]*goswag.Schema, len(bodies))
	for _, name := range names {
		out[name] = &goswag.Schema{}
	}
	for _, name := range names {
		buildSchema(out[name], "/schemas/"+name, bodies[name], out, &iss)
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// LoadBytes is Load over an in-memory document.
func LoadBytes(data []byte) (map[string]*goswag.Schema, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (map[string]*goswag.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

// Register adds every loaded schema to the registry, in sorted name order.
func Register(reg *goswag.Registry, schemas map[string]*goswag.Schema) {
	for _, name := range sortedKeys(schemas) {
		reg.Register(name, schemas[name])
	}
}

func buildSchema(dst *goswag.Schema, path string, body map[string]any, shells map[string]*goswag.Schema, iss *goswag.Issues) {
	for _, key := range sortedKeys(body) {
		v := body[key]
		switch key {
		case "title":
			dst.Title = wantString(path+"/title", v, iss)
		case "description":
			dst.Description = wantString(path+"/description", v, iss)
		case "only":
			dst.Only = wantStrings(path+"/only", v, iss)
		case "exclude":
			dst.Exclude = wantStrings(path+"/exclude", v, iss)
		case "implicitOnly":
			dst.ImplicitOnly = wantBool(path+"/implicitOnly", v, iss)
		case "fields":
			fields, ok := v.(map[string]any)
			if !ok {
				*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path + "/fields", Code: goswag.CodeInvalidDocument, Message: "fields must be a mapping"})
				continue
			}
			dst.Fields = make(map[string]*goswag.Field, len(fields))
			for _, fname := range sortedKeys(fields) {
				fpath := path + "/fields/" + fname
				fbody, ok := fields[fname].(map[string]any)
				if !ok {
					*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: fpath, Code: goswag.CodeInvalidDocument, Message: "field body must be a mapping"})
					continue
				}
				dst.Fields[fname] = buildField(fpath, fbody, shells, iss)
			}
		default:
			*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path + "/" + key, Code: goswag.CodeInvalidDocument, Message: fmt.Sprintf("unknown schema key %q", key)})
		}
	}
}

func buildField(path string, body map[string]any, shells map[string]*goswag.Schema, iss *goswag.Issues) *goswag.Field {
	f := &goswag.Field{}

	var (
		enumVals           []any
		enumSeen           bool
		minLen, maxLen     *int
		minimum, maximum   *float64
		pattern            string
		nestedName, ref    string
		many               bool
		dumpOnly, loadOnly bool
		sawArray           bool
	)

	for _, key := range sortedKeys(body) {
		v := body[key]
		switch key {
		case "type":
			name := wantString(path+"/type", v, iss)
			if name == "" {
				continue
			}
			// Arrays carry no Kind of their own; the items key supplies
			// the element descriptor.
			if strings.EqualFold(name, "array") {
				sawArray = true
				continue
			}
			k, ok := goswag.ParseKind(name)
			if !ok {
				*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path + "/type", Code: goswag.CodeInvalidType, Message: fmt.Sprintf("unknown type %q", name)})
				continue
			}
			f.Kind = k
		case "format":
			f.Format = wantString(path+"/format", v, iss)
		case "required":
			f.Required = wantBool(path+"/required", v, iss)
		case "description":
			f.Description = wantString(path+"/description", v, iss)
		case "default":
			f.DumpDefault = v
		case "loadDefault":
			f.LoadDefault = v
		case "dumpOnly":
			dumpOnly = wantBool(path+"/dumpOnly", v, iss)
		case "loadOnly":
			loadOnly = wantBool(path+"/loadOnly", v, iss)
		case "loadName":
			f.LoadName = wantString(path+"/loadName", v, iss)
		case "dumpName":
			f.DumpName = wantString(path+"/dumpName", v, iss)
		case "enum":
			vs, ok := v.([]any)
			if !ok {
				*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path + "/enum", Code: goswag.CodeInvalidDocument, Message: "enum must be a sequence"})
				continue
			}
			enumVals, enumSeen = vs, true
		case "minLength":
			minLen = wantInt(path+"/minLength", v, iss)
		case "maxLength":
			maxLen = wantInt(path+"/maxLength", v, iss)
		case "minimum":
			minimum = wantFloat(path+"/minimum", v, iss)
		case "maximum":
			maximum = wantFloat(path+"/maximum", v, iss)
		case "pattern":
			pattern = wantString(path+"/pattern", v, iss)
		case "items":
			ibody, ok := v.(map[string]any)
			if !ok {
				*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path + "/items", Code: goswag.CodeInvalidDocument, Message: "items must be a mapping"})
				continue
			}
			f.Items = buildField(path+"/items", ibody, shells, iss)
		case "nested":
			nestedName = wantString(path+"/nested", v, iss)
		case "ref":
			ref = wantString(path+"/ref", v, iss)
		case "many":
			many = wantBool(path+"/many", v, iss)
		default:
			if f.Metadata == nil {
				f.Metadata = make(map[string]any)
			}
			f.Metadata[key] = v
		}
	}

	switch {
	case dumpOnly && loadOnly:
		*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path, Code: goswag.CodeInvalidDocument, Message: "field cannot be both dumpOnly and loadOnly"})
	case dumpOnly:
		f.Restriction = goswag.RestrictDumpOnly
	case loadOnly:
		f.Restriction = goswag.RestrictLoadOnly
	}

	if sawArray && f.Items == nil {
		*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path + "/type", Code: goswag.CodeInvalidDocument, Message: "array type requires items"})
	}

	if enumSeen {
		f.Rules = append(f.Rules, rules.OneOf{Choices: enumVals})
	}
	if minLen != nil || maxLen != nil {
		f.Rules = append(f.Rules, rules.Length{Min: minLen, Max: maxLen})
	}
	if minimum != nil || maximum != nil {
		f.Rules = append(f.Rules, rules.Range{Min: minimum, Max: maximum})
	}
	if pattern != "" {
		f.Rules = append(f.Rules, rules.Regexp{Pattern: pattern})
	}

	if nestedName != "" || ref != "" || many {
		n := &goswag.Nested{Ref: ref, Many: many}
		if nestedName != "" {
			s, ok := shells[nestedName]
			if !ok {
				*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path + "/nested", Code: goswag.CodeUnknownSchema, Message: fmt.Sprintf("schema %q is not declared", nestedName)})
			}
			n.Schema = s
		} else if ref == "" {
			*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path + "/many", Code: goswag.CodeInvalidDocument, Message: "many requires nested or ref"})
		}
		f.Nested = n
	}

	return f
}

func wantString(path string, v any, iss *goswag.Issues) string {
	s, ok := v.(string)
	if !ok {
		*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path, Code: goswag.CodeInvalidDocument, Message: "value must be a string"})
		return ""
	}
	return s
}

func wantBool(path string, v any, iss *goswag.Issues) bool {
	b, ok := v.(bool)
	if !ok {
		*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path, Code: goswag.CodeInvalidDocument, Message: "value must be a boolean"})
		return false
	}
	return b
}

func wantInt(path string, v any, iss *goswag.Issues) *int {
	i, ok := v.(int64)
	if !ok {
		*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path, Code: goswag.CodeInvalidDocument, Message: "value must be an integer"})
		return nil
	}
	n := int(i)
	return &n
}

func wantFloat(path string, v any, iss *goswag.Issues) *float64 {
	switch t := v.(type) {
	case int64:
		fv := float64(t)
		return &fv
	case float64:
		fv := t
		return &fv
	default:
		*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path, Code: goswag.CodeInvalidDocument, Message: "value must be a number"})
		return nil
	}
}

func wantStrings(path string, v any, iss *goswag.Issues) []string {
	vs, ok := v.([]any)
	if !ok {
		*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: path, Code: goswag.CodeInvalidDocument, Message: "value must be a sequence of strings"})
		return nil
	}
	out := make([]string, 0, len(vs))
	for i, item := range vs {
		s, ok := item.(string)
		if !ok {
			*iss = goswag.AppendIssues(*iss, goswag.Issue{Path: fmt.Sprintf("%s/%d", path, i), Code: goswag.CodeInvalidDocument, Message: "value must be a string"})
			continue
		}
		out = append(out, s)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
