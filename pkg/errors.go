package zelkel

import "fmt"

// Every failure carries the position of the offending token. The first
// error aborts the parse; no partial AST is ever returned.

type LexError struct {
	Loc     *Location
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %s", e.Loc, e.Message)
}

type UnexpectedEOFError struct {
	Loc *Location
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("%s unexpected end of input", e.Loc)
}

type UnexpectedTokenError struct {
	Loc  *Location
	Want string
	Got  string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s expected %s but got '%s'", e.Loc, e.Want, e.Got)
}

type UnknownTypeError struct {
	Loc  *Location
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s unknown type: '%s'", e.Loc, e.Name)
}

type UnknownIdentifierError struct {
	Loc  *Location
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("%s unknown identifier: '%s'", e.Loc, e.Name)
}

type TypeMismatchError struct {
	Loc  *Location
	Want ValueType
	Got  ValueType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s incompatible types: '%s' and '%s'", e.Loc, e.Want, e.Got)
}

type RedeclarationError struct {
	Loc  *Location
	Name string
}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("%s redeclaration of '%s'", e.Loc, e.Name)
}

type UndeclaredVariableError struct {
	Loc  *Location
	Name string
}

func (e *UndeclaredVariableError) Error() string {
	return fmt.Sprintf("%s undeclared variable: '%s'", e.Loc, e.Name)
}
