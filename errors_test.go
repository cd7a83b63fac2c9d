package goswag_test

import (
	"errors"
	"fmt"
	"testing"

	goswag "github.com/reoring/goswag"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := goswag.Issues{
		{Path: "/a", Code: goswag.CodeInvalidType},
		{Path: "/b", Code: goswag.CodeDuplicateKey},
		{Path: "/c", Code: goswag.CodeUnknownSchema},
		{Path: "/d", Code: goswag.CodeInvalidDocument},
	}
	want := "invalid_type at /a; duplicate_key at /b; unknown_schema at /c; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("summary mismatch\n got=%q\nwant=%q", got, want)
	}
}

func TestIssues_ErrorEmpty(t *testing.T) {
	if got := (goswag.Issues{}).Error(); got != "" {
		t.Fatalf("empty issues must summarize to empty string, got %q", got)
	}
}

func TestAppendIssues(t *testing.T) {
	var iss goswag.Issues
	iss = goswag.AppendIssues(iss, goswag.Issue{Path: "/x", Code: goswag.CodeInvalidType})
	iss = goswag.AppendIssues(iss, goswag.Issue{Path: "/y", Code: goswag.CodeUnknownField})
	if len(iss) != 2 || iss[0].Path != "/x" || iss[1].Path != "/y" {
		t.Fatalf("append mismatch: %v", iss)
	}
}

func TestAsIssues(t *testing.T) {
	iss := goswag.Issues{{Path: "/a", Code: goswag.CodeInvalidType}}

	if got, ok := goswag.AsIssues(iss); !ok || len(got) != 1 {
		t.Fatalf("direct: got (%v, %v)", got, ok)
	}

	wrapped := fmt.Errorf("loading schemas: %w", iss)
	if got, ok := goswag.AsIssues(wrapped); !ok || len(got) != 1 {
		t.Fatalf("wrapped: got (%v, %v)", got, ok)
	}

	if _, ok := goswag.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors must not convert")
	}
	if _, ok := goswag.AsIssues(nil); ok {
		t.Fatalf("nil must not convert")
	}
}
