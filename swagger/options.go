package swagger

import (
	"fmt"

	goswag "github.com/reoring/goswag"
)

// Options controls one conversion call. The zero value converts for the
// dump direction with every nested schema inlined.
type Options struct {
	// Direction selects the dump or load view of the schema.
	Direction goswag.Direction

	// Registry, when non-nil, is consulted for nested schemas: a
	// registered schema (or a Clone of one) becomes a
	// "#/definitions/<name>" $ref instead of being inlined. Explicit Ref
	// strings on a Nested field win regardless.
	Registry *goswag.Registry
}

// Diag carries non-fatal warnings produced during conversion.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
