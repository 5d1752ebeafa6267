package uniform

// Expand runs the whole pipeline on one annotated declaration: scan,
// parse, check, render. On success the result is the declaration itself
// in canonical layout, so downstream compilation sees exactly what the
// programmer wrote. On a uniformity violation the returned error is a
// *Diagnostic and no declaration text is produced.
func Expand(filename string, source []byte, attrArgs string) (string, error) {
	if err := ParseAttrArgs(attrArgs); err != nil {
		return "", err
	}
	decl, err := ParseDecl(filename, source)
	if err != nil {
		return "", err
	}
	if diag := CheckUniform(decl); diag != nil {
		return "", diag
	}
	return RenderStructDecl(decl), nil
}
