// Package rules holds the declarative validation rules that can be attached
// to a field descriptor. Rules are plain data; the converter extracts the
// kinds it recognizes into JSON Schema constraint keywords and silently
// ignores everything else, so callers may define their own Rule
// implementations for concerns the output format cannot express.
package rules

// Rule is one declarative constraint on a field's value.
type Rule interface {
	// RuleName identifies the rule kind, mostly for diagnostics.
	RuleName() string
}

// OneOf restricts a value to a fixed set of choices. It maps to the enum
// keyword; several OneOf rules on one field intersect, because a value must
// satisfy every attached rule.
type OneOf struct {
	Choices []any
}

func (OneOf) RuleName() string { return "one_of" }

// Choices builds a OneOf from its allowed values.
func Choices(vs ...any) OneOf { return OneOf{Choices: vs} }

// Length bounds the length of a string value. Nil means unbounded on that
// side. Maps to minLength/maxLength.
type Length struct {
	Min *int
	Max *int
}

func (Length) RuleName() string { return "length" }

// Range bounds a numeric value. Nil means unbounded on that side. Maps to
// minimum/maximum.
type Range struct {
	Min *float64
	Max *float64
}

func (Range) RuleName() string { return "range" }

// Regexp requires a string value to match the pattern. Maps to the pattern
// keyword; the expression is emitted verbatim, not compiled here.
type Regexp struct {
	Pattern string
}

func (Regexp) RuleName() string { return "regexp" }

// Int returns a pointer to v, for the optional bound fields above.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for the optional bound fields above.
func Float(v float64) *float64 { return &v }
