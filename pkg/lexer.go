package zelkel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

const EOF rune = 0

const (
	TokenError TokenType = iota
	TokenEOF

	TokenInteger
	TokenFloat
	TokenString
	TokenBool
	TokenIdentifier

	TokenLet
	TokenMut
	TokenFn

	TokenPlus
	TokenMinus
	TokenMulti
	TokenDiv
	TokenMod
	TokenEquals
	TokenNotEquals
	TokenGreaterEquals
	TokenLessEquals
	TokenGreater
	TokenLess

	TokenOpenParentheses
	TokenCloseParentheses
	TokenOpenCurly
	TokenCloseCurly
	TokenColon
	TokenSemicolon
	TokenAssign
	TokenArrow
	TokenComma
	TokenLineComment
)

var keywordTable = map[string]TokenType{
	"let":   TokenLet,
	"mut":   TokenMut,
	"fn":    TokenFn,
	"true":  TokenBool,
	"false": TokenBool,
}

var operatorTable = map[string]TokenType{
	"+":  TokenPlus,
	"-":  TokenMinus,
	"*":  TokenMulti,
	"/":  TokenDiv,
	"%":  TokenMod,
	"==": TokenEquals,
	"!=": TokenNotEquals,
	">=": TokenGreaterEquals,
	"<=": TokenLessEquals,
	">":  TokenGreater,
	"<":  TokenLess,
	"(":  TokenOpenParentheses,
	")":  TokenCloseParentheses,
	"{":  TokenOpenCurly,
	"}":  TokenCloseCurly,
	":":  TokenColon,
	";":  TokenSemicolon,
	"=":  TokenAssign,
	"->": TokenArrow,
	",":  TokenComma,
	"//": TokenLineComment,
}

type Token struct {
	Typ   TokenType
	Value string
	Loc   *Location
}

func (t Token) isComment() bool {
	return t.Typ == TokenLineComment
}

type Lexer struct {
	filename string
	reader   *bufio.Reader
	done     chan Token

	line int
	col  int
}

func NewLexer(filename string) (*Lexer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	l := NewLexerFromReader(f)
	l.filename = filename

	return l, nil
}

func NewLexerFromReader(reader io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(reader),
		done:   make(chan Token),
		line:   1,
		col:    1,
	}
}

func (l *Lexer) GetFilename() string {
	return l.filename
}

func (l *Lexer) Chan() chan Token {
	return l.done
}

func (l *Lexer) Run() {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	close(l.done)
}

// RunBlocking drains the lexer into a fully materialized token sequence,
// which is the shape the parser consumes.
func (l *Lexer) RunBlocking() ([]Token, error) {
	go l.Run()

	var tokens []Token
	for t := range l.Chan() {
		if t.Typ == TokenEOF {
			return tokens, nil
		}

		if t.Typ == TokenError {
			return nil, &LexError{Loc: t.Loc, Message: t.Value}
		}

		tokens = append(tokens, t)
	}

	return tokens, nil
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF:
			return l.emmitValue(TokenEOF, "", l.loc())
		case unicode.IsSpace(r):
			l.next()
			continue
		case '0' <= r && r <= '9':
			return numberState
		case r == '"':
			return stringState
		case unicode.IsLetter(r) || r == '_':
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	loc := l.loc()

	var num strings.Builder
	for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
		num.WriteRune(l.next())
	}

	if l.peek() != '.' {
		return l.emmitValue(TokenInteger, num.String(), loc)
	}

	num.WriteRune(l.next())
	if r := l.peek(); r < '0' || '9' < r {
		return l.errorf(loc, "malformed number '%s'", num.String())
	}

	for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
		num.WriteRune(l.next())
	}

	return l.emmitValue(TokenFloat, num.String(), loc)
}

func stringState(l *Lexer) stateFunc {
	loc := l.loc()
	l.next() // Skip the leading double-quote

	var str strings.Builder
	for r := l.next(); r != '"'; r = l.next() {
		if r == EOF {
			return l.errorf(loc, "unclosed string: %s", str.String())
		}

		str.WriteRune(r)
	}

	return l.emmitValue(TokenString, str.String(), loc)
}

func identifierState(l *Lexer) stateFunc {
	loc := l.loc()

	var id strings.Builder
	for r := l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'; r = l.peek() {
		id.WriteRune(l.next())
	}

	if t, ok := keywordTable[id.String()]; ok {
		return l.emmitValue(t, id.String(), loc)
	}

	return l.emmitValue(TokenIdentifier, id.String(), loc)
}

func operatorState(l *Lexer) stateFunc {
	loc := l.loc()

	r := l.next()
	switch r {
	case '=', '!', '>', '<', '-', '/': // Some operators can be two runes
		op := string(r) + string(l.peek())
		if tok, ok := operatorTable[op]; ok {
			l.next() // Skip

			if tok == TokenLineComment {
				return lineCommentState
			}

			return l.emmitValue(tok, op, loc)
		}
	}

	if tok, ok := operatorTable[string(r)]; ok {
		return l.emmitValue(tok, string(r), loc)
	}

	return l.errorf(loc, "invalid symbol '%c'", r)
}

func lineCommentState(l *Lexer) stateFunc {
	loc := l.loc()

	var id strings.Builder
	for r := l.peek(); r != '\n' && r != EOF; r = l.peek() {
		id.WriteRune(l.next())
	}

	return l.emmitValue(TokenLineComment, id.String(), loc)
}

func (l *Lexer) errorf(loc *Location, format string, args ...interface{}) stateFunc {
	l.done <- Token{
		Typ:   TokenError,
		Value: fmt.Sprintf(format, args...),
		Loc:   loc,
	}

	return nil
}

func (l *Lexer) emmitValue(t TokenType, val string, loc *Location) stateFunc {
	l.done <- Token{
		Typ:   t,
		Value: val,
		Loc:   loc,
	}

	if t == TokenEOF {
		return nil
	}

	return defaultState
}

func (l *Lexer) loc() *Location {
	return &Location{Line: l.line, Col: l.col}
}

func (l *Lexer) peek() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	_ = l.reader.UnreadRune()

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r
}
