package resources

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// CUE schemas for the two resource files. A word maps to one sense or
// an ordered list of senses; the first sense is authoritative for level
// lookups.
const wordLookupSchema = `
#Sense: {
	base_form: string & !=""
	pos:       string & !=""
	CEFR:      "A1" | "A2" | "B1" | "B2" | "C1" | "C2"
}

{[string]: #Sense | [...#Sense]}
`

const frequencySchema = `{[string]: int & >0}`

func validateSchema(schema string, data []byte) error {
	ctx := cuecontext.New()
	schemaVal := ctx.CompileString(schema)
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("invalid resource schema: %w", err)
	}

	dataVal := ctx.CompileBytes(data)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("compile resource data: %w", err)
	}

	merged := schemaVal.Unify(dataVal)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return nil
}
