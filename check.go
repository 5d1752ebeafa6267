package uniform

import "fmt"

// Diagnostic is a clean compile-time error for a well-shaped declaration
// whose field types are not uniform. It is anchored at the declaration's
// position, not at the offending field.
type Diagnostic struct {
	pos        Pos
	StructName string
	Expected   string
	Found      string
	Field      string
}

func (d *Diagnostic) Pos() Pos {
	return d.pos
}

func (d *Diagnostic) Message() string {
	return fmt.Sprintf(
		"Struct %s has fields of different types. Expected uniform use of %s, found %s in field %s.",
		d.StructName,
		d.Expected,
		d.Found,
		d.Field,
	)
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: error: %s", d.pos, d.Message())
}

// CheckUniform compares every field's rendered type against the first
// field's. The comparison is name-based: distinct spellings of the same
// underlying type do not match. Returns nil when all fields agree, or a
// Diagnostic for the first field that does not.
func CheckUniform(decl *StructDecl) *Diagnostic {
	if len(decl.Fields) == 0 {
		panic("struct declaration has no fields")
	}
	reference := RenderType(decl.Fields[0].Type)
	for _, field := range decl.Fields {
		candidate := RenderType(field.Type)
		if candidate != reference {
			return &Diagnostic{
				pos:        decl.pos(),
				StructName: string(decl.Name.Content),
				Expected:   reference,
				Found:      candidate,
				Field:      string(field.Name.Content),
			}
		}
	}
	return nil
}
