package uniform_test

import (
	"reflect"
	"testing"
	"uniform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseTypeTest struct {
	source   []byte
	expected string
}

var parseTypeTests = []parseTypeTest{
	{[]byte("struct A { x: T }"), "T"},
	{[]byte("struct A { x: u32 }"), "u32"},
	{[]byte("struct A { x: *T }"), "*T"},
	{[]byte("struct A { x: **u8 }"), "**u8"},
	{[]byte("struct A { x: Vec<T> }"), "Vec<T>"},
	{[]byte("struct A { x: Map<K, V> }"), "Map<K, V>"},
	{[]byte("struct A { x: Vec<Vec<*T>> }"), "Vec<Vec<*T>>"},
}

func TestParseFieldType(t *testing.T) {
	for _, test := range parseTypeTests {
		t.Logf("running test '%s'", test.source)
		decl, err := uniform.ParseDecl("<test>", test.source)
		require.NoError(t, err)
		require.Len(t, decl.Fields, 1)
		assert.Equal(t, uniform.RenderType(decl.Fields[0].Type), test.expected)
	}
}

func TestParseStructDecl(t *testing.T) {
	source := []byte("struct Example<T> {\n\tx: T,\n\tnot_offending: T,\n}")
	decl, err := uniform.ParseDecl("<test>", source)
	require.NoError(t, err)
	assert.Equal(t, decl.Name.Content, []byte("Example"))
	require.Len(t, decl.TypeParams, 1)
	assert.Equal(t, decl.TypeParams[0].Content, []byte("T"))
	require.Len(t, decl.Fields, 2)
	assert.Equal(t, decl.Fields[0].Name.Content, []byte("x"))
	assert.Equal(t, decl.Fields[1].Name.Content, []byte("not_offending"))
}

func TestParseStructDeclWithoutTrailingComma(t *testing.T) {
	source := []byte("struct Pair { a: f32, b: f32 }")
	decl, err := uniform.ParseDecl("<test>", source)
	require.NoError(t, err)
	require.Len(t, decl.Fields, 2)
}

func TestParseStructDeclMultipleTypeParams(t *testing.T) {
	source := []byte("struct Example<T, U> { x: T }")
	decl, err := uniform.ParseDecl("<test>", source)
	require.NoError(t, err)
	require.Len(t, decl.TypeParams, 2)
	assert.Equal(t, decl.TypeParams[0].Content, []byte("T"))
	assert.Equal(t, decl.TypeParams[1].Content, []byte("U"))
}

func TestParseEmptyStructDecl(t *testing.T) {
	decl, err := uniform.ParseDecl("<test>", []byte("struct Empty {}"))
	require.NoError(t, err)
	assert.Len(t, decl.Fields, 0)
}

func TestParsePositionalFieldsPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = uniform.ParseDecl("<test>", []byte("struct Example(u32, u32)"))
	})
}

type parseErrorTest struct {
	source []byte
}

var parseErrorTests = []parseErrorTest{
	{[]byte("")},
	{[]byte("enum Example { }")},
	{[]byte("struct Example")},
	{[]byte("struct Example { x T }")},
	{[]byte("struct Example { x: }")},
	{[]byte("struct Example { x: T y: T }")},
	{[]byte("struct Example { x: Vec<T }")},
	{[]byte("struct Example<T {}")},
	{[]byte("struct Example {} struct Another {}")},
}

func TestParseErrors(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Logf("running test '%s'", test.source)
		_, err := uniform.ParseDecl("<test>", test.source)
		assert.Error(t, err)
	}
}

func TestParserMatchError(t *testing.T) {
	p := uniform.NewParser([]uniform.Token{
		{Kind: uniform.IDENTIFIER, Content: []byte("Example")},
		{Kind: uniform.EOF},
	})
	decl, err := p.ParseStructDecl()
	assert.Nil(t, decl)
	if assert.Error(t, err) {
		assert.Equal(t, reflect.TypeOf(err), reflect.TypeOf(uniform.Error{}))
	}
}
