package zelkel

import "io"

// Frontend wires the lexer and the parser into a single entry point.
type Frontend struct{}

func NewFrontend() *Frontend {
	return &Frontend{}
}

func (f *Frontend) Parse(filename string) (*AST, error) {
	lexer, err := NewLexer(filename)
	if err != nil {
		return nil, err
	}

	return f.parse(lexer)
}

func (f *Frontend) ParseReader(reader io.Reader, filename string) (*AST, error) {
	lexer := NewLexerFromReader(reader)
	lexer.filename = filename

	return f.parse(lexer)
}

func (f *Frontend) parse(l *Lexer) (*AST, error) {
	toks, err := l.RunBlocking()
	if err != nil {
		return nil, err
	}

	return NewParser(l.GetFilename(), toks).Run()
}
