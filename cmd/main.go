package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/xyproto/env/v2"

	"github.com/johron/zelkel-compiler/pkg"
)

func main() {
	filename := env.Str("ZELKEL_FILE")
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	if filename == "" {
		fmt.Fprintln(os.Stderr, "usage: zelkel <file>")
		os.Exit(1)
	}

	ast, err := zelkel.NewFrontend().Parse(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, diagnostic(filename, err))
		os.Exit(1)
	}

	fmt.Printf("%s: %d statements\n", ast.Filename, len(ast.Statements))

	if env.Bool("ZELKEL_DUMP") {
		for _, stmt := range ast.Statements {
			describe(stmt)
		}
	}
}

func describe(stmt zelkel.Stmt) {
	switch s := stmt.(type) {
	case *zelkel.VariableDecl:
		fmt.Printf("%s let %s: %s\n", s.Loc, s.Name, s.DeclaredType)
	case *zelkel.FuncDecl:
		fmt.Printf("%s fn %s -> %s (%d statements)\n", s.Loc, s.Name, s.ReturnType, len(s.Body))
	case *zelkel.ExprStatement:
		fmt.Printf("%s expression: %s\n", s.Loc, s.Type())
	}
}

func diagnostic(filename string, err error) string {
	msg := fmt.Sprintf("%s: %s", filename, err)
	if useColor() {
		return "\x1b[31m" + msg + "\x1b[0m"
	}

	return msg
}

func useColor() bool {
	// NO_COLOR convention: https://no-color.org/
	if env.Has("NO_COLOR") {
		return false
	}

	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
