package overrides

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// overrideSchema constrains the override table document. Uses CUE SDK's
// Go API directly (not CLI subprocess).
const overrideSchema = `
#Override: {
	key: string & !=""
	dx:  number
	dy:  number
}

overrides: [...#Override]
`

// validateSchema unifies the decoded YAML document with the CUE schema
// and reports any constraint violation with file positions where CUE
// can provide them.
func validateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("overrides: parse: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(overrideSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("overrides: compile schema: %w", err)
	}

	value := ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return fmt.Errorf("overrides: encode document: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("overrides: schema violation: %s", cueerrors.Details(err, nil))
	}
	return nil
}
