package uniform

type Node interface {
	pos() Pos
}

type StructDecl struct {
	Struct     Token
	Name       Token
	TypeParams []Token
	Fields     []StructField
}

type StructField struct {
	Name  Token
	Colon Token
	Type  TypeNode
}

func (s *StructDecl) pos() Pos {
	return s.Struct.Pos
}

type TypeNode interface {
	Node
	typeNode()
}

type IdTypeNode struct {
	Token
}

type PointerTypeNode struct {
	Star Token
	To   TypeNode
}

type GenericTypeNode struct {
	Name    Token
	Less    Token
	Args    []TypeNode
	Greater Token
}

func (i *IdTypeNode) pos() Pos {
	return i.Token.Pos
}
func (p *PointerTypeNode) pos() Pos {
	return p.Star.Pos
}
func (g *GenericTypeNode) pos() Pos {
	return g.Name.Pos
}

func (i *IdTypeNode) typeNode()      {}
func (p *PointerTypeNode) typeNode() {}
func (g *GenericTypeNode) typeNode() {}
