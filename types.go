package goswag

import "strings"

// Direction selects which representation of a schema a conversion targets.
type Direction int

const (
	Dump Direction = iota // Serializing output (the default).
	Load                  // Accepting input.
)

func (d Direction) String() string {
	if d == Load {
		return "load"
	}
	return "dump"
}

// Kind is the declared semantic type of a field. The zero value is unknown,
// which converts to a plain string property (total-mapping fallback).
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindInteger
	KindNumber
	KindFloat
	KindDecimal
	KindBool
	KindUUID
	KindDateTime
	KindDate
	KindTime
	KindEmail
	KindURL
	KindBytes
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindString:   "string",
	KindInteger:  "integer",
	KindNumber:   "number",
	KindFloat:    "float",
	KindDecimal:  "decimal",
	KindBool:     "boolean",
	KindUUID:     "uuid",
	KindDateTime: "datetime",
	KindDate:     "date",
	KindTime:     "time",
	KindEmail:    "email",
	KindURL:      "url",
	KindBytes:    "bytes",
}

var kindsByName = map[string]Kind{
	"unknown":  KindUnknown,
	"string":   KindString,
	"integer":  KindInteger,
	"int":      KindInteger,
	"number":   KindNumber,
	"float":    KindFloat,
	"decimal":  KindDecimal,
	"boolean":  KindBool,
	"bool":     KindBool,
	"uuid":     KindUUID,
	"datetime": KindDateTime,
	"date":     KindDate,
	"time":     KindTime,
	"email":    KindEmail,
	"url":      KindURL,
	"bytes":    KindBytes,
	"binary":   KindBytes,
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind maps a kind name back to its Kind. Matching is case-insensitive
// and ignores hyphens, so "date-time" and "DateTime" both parse; "int",
// "bool" and "binary" are accepted aliases. The boolean reports whether the
// name was recognized; unrecognized names return KindUnknown.
func ParseKind(name string) (Kind, bool) {
	n := strings.ReplaceAll(strings.ToLower(name), "-", "")
	k, ok := kindsByName[n]
	return k, ok
}

// Restriction limits a field to one conversion direction.
type Restriction int

const (
	RestrictNone     Restriction = iota // Visible in both directions.
	RestrictDumpOnly                    // Skipped when loading.
	RestrictLoadOnly                    // Skipped when dumping.
)

// Allows reports whether a field with this restriction is retained for the
// given direction.
func (r Restriction) Allows(d Direction) bool {
	switch r {
	case RestrictDumpOnly:
		return d == Dump
	case RestrictLoadOnly:
		return d == Load
	default:
		return true
	}
}

// Location is a Swagger 2.0 parameter location.
type Location string

const (
	InQuery    Location = "query"
	InHeader   Location = "header"
	InPath     Location = "path"
	InFormData Location = "formData"
	InBody     Location = "body"
)
