package uniform

import (
	"bytes"
	"fmt"

	"github.com/cznic/mathutil"
)

type TokenKind int

const (
	EOF TokenKind = iota
	IDENTIFIER
	COLON
	COMMA
	STAR
	LESS
	GREATER
	LEFTBRACE
	RIGHTBRACE
	LEFTPAREN
	RIGHTPAREN

	// keywords
	STRUCT
)

func (t TokenKind) String() string {
	switch t {
	case EOF:
		return "EOF"
	case IDENTIFIER:
		return "IDENTIFIER"
	case COLON:
		return ":"
	case COMMA:
		return ","
	case STAR:
		return "*"
	case LESS:
		return "<"
	case GREATER:
		return ">"
	case LEFTBRACE:
		return "{"
	case RIGHTBRACE:
		return "}"
	case LEFTPAREN:
		return "("
	case RIGHTPAREN:
		return ")"
	case STRUCT:
		return "STRUCT"
	}
	panic("unreachable")
}

type Pos struct {
	filename string
	line     uint
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d", p.filename, p.line)
}

type Token struct {
	Pos
	Kind    TokenKind
	Content []byte
}

func ScanTokens(filename string, source []byte) ([]Token, error) {
	sc := NewScanner(filename, source)
	tokens := []Token{}
	for {
		tok, err := sc.Scan()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens, nil
}

type Scanner struct {
	pos    Pos
	source []byte
	start  int
	end    int
}

func NewScanner(filename string, source []byte) Scanner {
	const DEFAULT_LINE uint = 1
	return Scanner{
		pos: Pos{
			filename: filename,
			line:     DEFAULT_LINE,
		},
		source: source,
	}
}

func (s *Scanner) Scan() (Token, error) {
	s.skipWhitespace()
	s.start = s.end
	var t Token
	switch c := s.next(); c {
	case 0:
		s.advance()
		t = s.token(EOF)
	case ':':
		s.advance()
		t = s.token(COLON)
	case ',':
		s.advance()
		t = s.token(COMMA)
	case '*':
		s.advance()
		t = s.token(STAR)
	case '<':
		s.advance()
		t = s.token(LESS)
	case '>':
		s.advance()
		t = s.token(GREATER)
	case '{':
		s.advance()
		t = s.token(LEFTBRACE)
	case '}':
		s.advance()
		t = s.token(RIGHTBRACE)
	case '(':
		s.advance()
		t = s.token(LEFTPAREN)
	case ')':
		s.advance()
		t = s.token(RIGHTPAREN)
	default:
		if isId(c) {
			return s.id(), nil
		}
		return s.token(EOF), NewError(s.pos, "unexpected character: %c", c)
	}
	return t, nil
}

func isId(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || c == '_'
}

func isNum(c byte) bool {
	return '0' <= c && c <= '9'
}

func (s *Scanner) id() Token {
	for {
		c := s.next()
		if !isId(c) && !isNum(c) {
			break
		}
		s.advance()
	}
	t := s.token(IDENTIFIER)
	if bytes.Equal(t.Content, []byte("struct")) {
		t.Kind = STRUCT
	}
	return t
}

func (s *Scanner) skipWhitespace() {
	for {
		switch s.next() {
		case ' ', '\t', '\r':
			s.advance()
		case '\n':
			s.advance()
			s.pos.line++
		default:
			return
		}
	}
}

func (s *Scanner) next() byte {
	if s.end >= len(s.source) {
		return 0
	}
	return s.source[s.end]
}

func (s *Scanner) advance() byte {
	c := s.next()
	s.end++
	return c
}

func (s *Scanner) token(t TokenKind) Token {
	end := mathutil.Clamp(s.end, 0, len(s.source))
	content := s.source[s.start:end]
	s.start = end
	return Token{
		Pos: Pos{
			filename: s.pos.filename,
			line:     s.pos.line,
		},
		Kind:    t,
		Content: content,
	}
}
