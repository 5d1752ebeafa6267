package uniform

func ParseDecl(filename string, source []byte) (*StructDecl, error) {
	tokens, err := ScanTokens(filename, source)
	if err != nil {
		return nil, err
	}
	psr := NewParser(tokens)
	return psr.ParseStructDeclAndEof()
}

type Parser struct {
	tokens []Token
	index  int
}

func NewParser(tokens []Token) Parser {
	if len(tokens) == 0 {
		tokens = append(tokens, Token{})
	}
	if tokens[len(tokens)-1].Kind != EOF {
		tokens = append(tokens, Token{Kind: EOF})
	}
	return Parser{
		tokens: tokens,
		index:  0,
	}
}

func (p *Parser) ParseStructDecl() (*StructDecl, error) {
	kw, err := p.match(STRUCT)
	if err != nil {
		return nil, err
	}
	name, err := p.match(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	var typeParams []Token
	if p.next().Kind == LESS {
		typeParams, err = p.parseTypeParams()
		if err != nil {
			return nil, err
		}
	}
	if p.next().Kind == LEFTPAREN {
		// out of contract: positional fields are programmer error, not a diagnostic
		panic("only named fields are supported")
	}
	fields, err := p.parseStructBody()
	if err != nil {
		return nil, err
	}
	return &StructDecl{
		Struct:     kw,
		Name:       name,
		TypeParams: typeParams,
		Fields:     fields,
	}, nil
}

func (p *Parser) ParseStructDeclAndEof() (*StructDecl, error) {
	decl, err := p.ParseStructDecl()
	if err != nil {
		return nil, err
	}
	_, err = p.match(EOF)
	if err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseTypeParams() (params []Token, err error) {
	_, err = p.match(LESS)
	if err != nil {
		return params, err
	}
	params = make([]Token, 0)
	for p.next().Kind != GREATER {
		id, err := p.match(IDENTIFIER)
		if err != nil {
			return params, err
		}
		params = append(params, id)
		if p.next().Kind == GREATER {
			continue
		}
		if p.next().Kind == COMMA {
			p.advance()
			continue
		}
		return params, NewError(p.next().Pos, "expected '>' or ',', but got %s", p.next().Kind)
	}
	_, err = p.match(GREATER)
	if err != nil {
		return params, err
	}
	return params, nil
}

func (p *Parser) parseStructBody() (fields []StructField, err error) {
	_, err = p.match(LEFTBRACE)
	if err != nil {
		return fields, err
	}
	fields = make([]StructField, 0)
	for p.next().Kind != RIGHTBRACE {
		name, err := p.match(IDENTIFIER)
		if err != nil {
			return fields, err
		}
		colon, err := p.match(COLON)
		if err != nil {
			return fields, err
		}
		typ, err := p.parseType()
		if err != nil {
			return fields, err
		}
		fields = append(fields, StructField{
			Name:  name,
			Colon: colon,
			Type:  typ,
		})
		if p.next().Kind == COMMA {
			p.advance()
			continue
		}
		if p.next().Kind == RIGHTBRACE {
			break
		}
		return fields, NewError(p.next().Pos, "expected ',' or '}', but got %s", p.next().Kind)
	}
	_, err = p.match(RIGHTBRACE)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

func (p *Parser) parseType() (TypeNode, error) {
	switch p.next().Kind {
	case IDENTIFIER:
		tok := p.advance()
		if p.next().Kind != LESS {
			return &IdTypeNode{
				Token: tok,
			}, nil
		}
		less := p.advance()
		args := make([]TypeNode, 0)
		for p.next().Kind != GREATER {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.next().Kind == GREATER {
				continue
			}
			if p.next().Kind == COMMA {
				p.advance()
				continue
			}
			return nil, NewError(p.next().Pos, "expected '>' or ',', but got %s", p.next().Kind)
		}
		greater, err := p.match(GREATER)
		if err != nil {
			return nil, err
		}
		return &GenericTypeNode{
			Name:    tok,
			Less:    less,
			Args:    args,
			Greater: greater,
		}, nil
	case STAR:
		star := p.advance()
		to, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &PointerTypeNode{
			Star: star,
			To:   to,
		}, nil
	}
	return nil, NewError(p.next().Pos, "expected type, but got %s", p.next().Kind)
}

func (p *Parser) next() Token {
	if p.index >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.index]
}

func (p *Parser) advance() Token {
	t := p.next()
	p.index++
	return t
}

func (p *Parser) match(k TokenKind) (Token, error) {
	t := p.next()
	if t.Kind != k {
		return Token{Kind: k}, NewError(t.Pos, "expected %s, but got %s", k, t.Kind)
	}
	p.index++
	return t, nil
}
