package goswag_test

import (
	"testing"

	goswag "github.com/reoring/goswag"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		name string
		kind goswag.Kind
		ok   bool
	}{
		{"string", goswag.KindString, true},
		{"integer", goswag.KindInteger, true},
		{"int", goswag.KindInteger, true},
		{"bool", goswag.KindBool, true},
		{"boolean", goswag.KindBool, true},
		{"binary", goswag.KindBytes, true},
		{"datetime", goswag.KindDateTime, true},
		{"date-time", goswag.KindDateTime, true},
		{"DateTime", goswag.KindDateTime, true},
		{"uuid", goswag.KindUUID, true},
		{"fancy", goswag.KindUnknown, false},
		{"", goswag.KindUnknown, false},
	}
	for _, c := range cases {
		k, ok := goswag.ParseKind(c.name)
		if k != c.kind || ok != c.ok {
			t.Fatalf("ParseKind(%q): got (%v, %v), want (%v, %v)", c.name, k, ok, c.kind, c.ok)
		}
	}
}

func TestKind_String(t *testing.T) {
	if got := goswag.KindDateTime.String(); got != "datetime" {
		t.Fatalf("got %q, want datetime", got)
	}
	if got := goswag.Kind(999).String(); got != "unknown" {
		t.Fatalf("out-of-range kind: got %q, want unknown", got)
	}
}

func TestRestriction_Allows(t *testing.T) {
	cases := []struct {
		r    goswag.Restriction
		d    goswag.Direction
		want bool
	}{
		{goswag.RestrictNone, goswag.Dump, true},
		{goswag.RestrictNone, goswag.Load, true},
		{goswag.RestrictDumpOnly, goswag.Dump, true},
		{goswag.RestrictDumpOnly, goswag.Load, false},
		{goswag.RestrictLoadOnly, goswag.Dump, false},
		{goswag.RestrictLoadOnly, goswag.Load, true},
	}
	for _, c := range cases {
		if got := c.r.Allows(c.d); got != c.want {
			t.Fatalf("%v.Allows(%v): got %v, want %v", c.r, c.d, got, c.want)
		}
	}
}

func TestDirection_String(t *testing.T) {
	if goswag.Dump.String() != "dump" || goswag.Load.String() != "load" {
		t.Fatalf("direction names: got %q/%q", goswag.Dump, goswag.Load)
	}
}
