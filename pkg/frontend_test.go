package zelkel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontend(t *testing.T) {
	src := `let x: int = 1 + 2 * 3;
let mut greeting: str = "hi";
fn scale(a: int, b: int) -> int {
	2 * a * b;
}
1 + x;
`

	ast, err := NewFrontend().ParseReader(strings.NewReader(src), "main.zk")
	assert.NoError(t, err)
	assert.Equal(t, "main.zk", ast.Filename)
	assert.Len(t, ast.Statements, 4)

	assert.IsType(t, &VariableDecl{}, ast.Statements[0])
	assert.IsType(t, &VariableDecl{}, ast.Statements[1])
	assert.IsType(t, &FuncDecl{}, ast.Statements[2])
	assert.IsType(t, &ExprStatement{}, ast.Statements[3])

	decl := ast.Statements[1].(*VariableDecl)
	assert.True(t, decl.Mutable)
	assert.Equal(t, String, decl.DeclaredType)

	fn := ast.Statements[2].(*FuncDecl)
	assert.Equal(t, Integer, fn.ReturnType)
	assert.Len(t, fn.Params, 2)
}

func TestFrontendTypeMismatchPosition(t *testing.T) {
	_, err := NewFrontend().ParseReader(strings.NewReader(`1 + "a";`), "testing")
	assert.Error(t, err)

	mismatch, ok := err.(*TypeMismatchError)
	assert.True(t, ok)
	assert.Equal(t, Integer, mismatch.Want)
	assert.Equal(t, String, mismatch.Got)

	// The error points at the right operand
	assert.Equal(t, &Location{Line: 1, Col: 5}, mismatch.Loc)
}

func TestFrontendRedeclarationPosition(t *testing.T) {
	src := "let x: int = 1;\nlet x: int = 2;"

	_, err := NewFrontend().ParseReader(strings.NewReader(src), "testing")
	assert.Error(t, err)

	redecl, ok := err.(*RedeclarationError)
	assert.True(t, ok)
	assert.Equal(t, "x", redecl.Name)

	// The error points at the second x
	assert.Equal(t, &Location{Line: 2, Col: 5}, redecl.Loc)
}

func TestFrontendErrors(t *testing.T) {
	cases := []struct {
		src    string
		expect error
	}{
		{`let x: int = "a";`, &TypeMismatchError{}},
		{`foo;`, &UnknownIdentifierError{}},
		{`let x: number = 1;`, &UnknownTypeError{}},
		{`let x: int = y;`, &UndeclaredVariableError{}},
		{`let x: int =`, &UnexpectedEOFError{}},
		{`1 + ;`, &UnexpectedTokenError{}},
		{`let x int = 1;`, &UnexpectedTokenError{}},
		{`let @`, &LexError{}},
	}

	for _, c := range cases {
		_, err := NewFrontend().ParseReader(strings.NewReader(c.src), "testing")
		assert.Error(t, err, c.src)
		assert.IsType(t, c.expect, err, c.src)
	}
}

func TestFrontendIdempotence(t *testing.T) {
	src := "let x: int = 1;\n1 + x;"

	first, err := NewFrontend().ParseReader(strings.NewReader(src), "testing")
	assert.NoError(t, err)

	second, err := NewFrontend().ParseReader(strings.NewReader(src), "testing")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
