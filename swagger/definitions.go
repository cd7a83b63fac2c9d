package swagger

import (
	goswag "github.com/reoring/goswag"
	"github.com/reoring/goswag/openapi"
)

// Definitions converts every schema registered in reg into a definitions
// map keyed by registered name. The registry is also used for reference
// resolution, so registered schemas nested inside one another come out as
// $ref entries rather than inline copies; opts.Registry is overridden.
func Definitions(reg *goswag.Registry, opts Options) (openapi.Definitions, Diag) {
	diag := &simpleDiag{}
	opts.Registry = reg
	defs := make(openapi.Definitions)
	for _, name := range reg.Names() {
		s, _ := reg.Get(name)
		defs[name] = schemaObject(s, opts, diag)
	}
	return defs, diag
}
