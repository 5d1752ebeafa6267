package uniform

import (
	"strings"
)

// RenderType produces the canonical textual form of a type expression.
// Two types are considered equal exactly when their rendered forms are
// equal as strings.
func RenderType(t TypeNode) string {
	var builder strings.Builder
	renderType(&builder, t)
	return builder.String()
}

func renderType(builder *strings.Builder, t TypeNode) {
	switch tp := t.(type) {
	case *IdTypeNode:
		builder.Write(tp.Content)
	case *PointerTypeNode:
		builder.WriteString("*")
		renderType(builder, tp.To)
	case *GenericTypeNode:
		builder.Write(tp.Name.Content)
		builder.WriteString("<")
		for i, arg := range tp.Args {
			renderType(builder, arg)
			if i+1 < len(tp.Args) {
				builder.WriteString(", ")
			}
		}
		builder.WriteString(">")
	default:
		panic("unreachable")
	}
}

// RenderStructDecl re-emits a declaration in canonical layout: same name,
// same type parameters, same fields in the same order.
func RenderStructDecl(decl *StructDecl) string {
	var builder strings.Builder
	builder.WriteString("struct ")
	builder.Write(decl.Name.Content)
	if len(decl.TypeParams) > 0 {
		builder.WriteString("<")
		for i, param := range decl.TypeParams {
			builder.Write(param.Content)
			if i+1 < len(decl.TypeParams) {
				builder.WriteString(", ")
			}
		}
		builder.WriteString(">")
	}
	builder.WriteString(" {\n")
	for _, field := range decl.Fields {
		builder.WriteString("\t")
		builder.Write(field.Name.Content)
		builder.WriteString(": ")
		renderType(&builder, field.Type)
		builder.WriteString(",\n")
	}
	builder.WriteString("}\n")
	return builder.String()
}
