package zelkel

import "fmt"

// Parser walks a materialized token sequence and builds a typed AST in a
// single pass: type inference and checking happen while parsing, there is
// no separate semantic phase. The first error aborts the whole parse.
type Parser struct {
	filename string
	toks     []Token
	pos      int
	scopes   *ScopeStack
}

func NewParser(filename string, toks []Token) *Parser {
	filtered := make([]Token, 0, len(toks))
	for _, t := range toks {
		if t.isComment() {
			continue
		}

		filtered = append(filtered, t)
	}

	return &Parser{
		filename: filename,
		toks:     filtered,
	}
}

// Scopes exposes the scope stack after a parse, for consumers that resolve
// names against the front end's declarations.
func (p *Parser) Scopes() *ScopeStack {
	return p.scopes
}

// Run parses the whole token sequence into an ordered statement list.
// Parsing is stateless across calls: every Run starts from the beginning
// with a fresh global scope.
func (p *Parser) Run() (*AST, error) {
	p.pos = 0
	p.scopes = NewScopeStack()

	ast := &AST{Filename: p.filename}
	for p.pos < len(p.toks) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		ast.Statements = append(ast.Statements, stmt)
	}

	return ast, nil
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.toks)
}

// endLoc is the best position available for reporting a truncated input.
func (p *Parser) endLoc() *Location {
	if len(p.toks) == 0 {
		return nil
	}

	return p.toks[len(p.toks)-1].Loc
}

func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(offset int) Token {
	if p.pos+offset >= len(p.toks) {
		return Token{Typ: TokenEOF, Loc: p.endLoc()}
	}

	return p.toks[p.pos+offset]
}

func (p *Parser) next() Token {
	t := p.peek()
	if t.Typ != TokenEOF {
		p.pos++
	}

	return t
}

func (p *Parser) check(typs ...TokenType) bool {
	t := p.peek()
	for _, typ := range typs {
		if t.Typ == typ {
			return true
		}
	}

	return false
}

func (p *Parser) expect(typ TokenType) (Token, error) {
	if p.eof() {
		return Token{}, &UnexpectedEOFError{Loc: p.endLoc()}
	}

	t := p.next()
	if t.Typ != typ {
		return Token{}, &UnexpectedTokenError{Loc: t.Loc, Want: tokenName(typ), Got: t.Value}
	}

	return t, nil
}

var tokenNames = map[TokenType]string{
	TokenIdentifier:       "identifier",
	TokenOpenParentheses:  "'('",
	TokenCloseParentheses: "')'",
	TokenOpenCurly:        "'{'",
	TokenCloseCurly:       "'}'",
	TokenColon:            "':'",
	TokenSemicolon:        "';'",
	TokenAssign:           "'='",
	TokenArrow:            "'->'",
	TokenComma:            "','",
}

func tokenName(typ TokenType) string {
	if name, ok := tokenNames[typ]; ok {
		return name
	}

	return fmt.Sprintf("token %d", typ)
}

func (p *Parser) statement() (Stmt, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenLet:
		return p.variableDecl()
	case TokenFn:
		return p.funcDecl()
	case TokenIdentifier, TokenMut:
		return nil, &UnknownIdentifierError{Loc: tok.Loc, Name: tok.Value}
	default:
		return p.exprStatement()
	}
}

// variableDecl parses `let [mut] name: type = expr;`. The declared type and
// the initializer's inferred type must match exactly.
func (p *Parser) variableDecl() (Stmt, error) {
	start := p.next() // let keyword

	mutable := false
	if p.check(TokenMut) {
		p.next()
		mutable = true
	}

	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}

	typTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	typ, err := parseType(typTok)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if value.Type() != typ {
		return nil, &TypeMismatchError{Loc: value.GetLocation(), Want: typ, Got: value.Type()}
	}

	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}

	opts := VariableOptions{Mutable: mutable, Type: typ}
	if err := p.scopes.Declare(name.Value, name.Loc, opts); err != nil {
		return nil, err
	}

	return &VariableDecl{
		Name:         name.Value,
		Mutable:      mutable,
		DeclaredType: typ,
		Value:        value,
		Loc:          start.Loc,
	}, nil
}

// funcDecl parses `fn name(a: int, b: str) -> type { ... }`. Parameters are
// declared into the function's own scope, the body is parsed inside that
// scope, and the body's final expression statement must match the declared
// return type.
func (p *Parser) funcDecl() (Stmt, error) {
	start := p.next() // fn keyword

	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	p.scopes.DeclareFunction(name.Value)

	if _, err := p.expect(TokenOpenParentheses); err != nil {
		return nil, err
	}

	p.scopes.Enter()

	var params []ParamDecl
	for !p.check(TokenCloseParentheses) {
		param, err := p.paramDecl()
		if err != nil {
			return nil, err
		}

		params = append(params, param)

		if !p.check(TokenComma) {
			break
		}

		p.next() // Skip the comma

		// A comma must introduce another parameter
		if p.check(TokenCloseParentheses) {
			tok := p.peek()
			return nil, &UnexpectedTokenError{Loc: tok.Loc, Want: tokenName(TokenIdentifier), Got: tok.Value}
		}
	}

	if _, err := p.expect(TokenCloseParentheses); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenArrow); err != nil {
		return nil, err
	}

	retTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	retTyp, err := parseType(retTok)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenOpenCurly); err != nil {
		return nil, err
	}

	var body []Stmt
	for !p.check(TokenCloseCurly) {
		if p.eof() {
			return nil, &UnexpectedEOFError{Loc: p.endLoc()}
		}

		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		body = append(body, stmt)
	}

	closer, err := p.expect(TokenCloseCurly)
	if err != nil {
		return nil, err
	}

	if err := p.checkReturn(body, retTyp, closer); err != nil {
		return nil, err
	}

	if err := p.scopes.Exit(); err != nil {
		return nil, err
	}

	return &FuncDecl{
		Name:       name.Value,
		Params:     params,
		ReturnType: retTyp,
		Body:       body,
		Loc:        start.Loc,
	}, nil
}

func (p *Parser) paramDecl() (ParamDecl, error) {
	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return ParamDecl{}, err
	}

	if _, err := p.expect(TokenColon); err != nil {
		return ParamDecl{}, err
	}

	typTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return ParamDecl{}, err
	}

	typ, err := parseType(typTok)
	if err != nil {
		return ParamDecl{}, err
	}

	opts := VariableOptions{Mutable: false, Type: typ}
	if err := p.scopes.Declare(name.Value, name.Loc, opts); err != nil {
		return ParamDecl{}, err
	}

	return ParamDecl{Name: name.Value, Typ: typ, Loc: name.Loc}, nil
}

// checkReturn requires the body to end in an expression statement whose
// type equals the declared return type.
func (p *Parser) checkReturn(body []Stmt, retTyp ValueType, closer Token) error {
	if len(body) == 0 {
		return &UnexpectedTokenError{Loc: closer.Loc, Want: "return expression", Got: closer.Value}
	}

	last, ok := body[len(body)-1].(*ExprStatement)
	if !ok {
		return &UnexpectedTokenError{Loc: closer.Loc, Want: "return expression", Got: closer.Value}
	}

	if last.Type() != retTyp {
		return &TypeMismatchError{Loc: last.GetLocation(), Want: retTyp, Got: last.Type()}
	}

	return nil
}

func (p *Parser) exprStatement() (Stmt, error) {
	start := p.peek()

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}

	return &ExprStatement{Value: value, Loc: start.Loc}, nil
}

// expression is the lowest-precedence layer: a left-associative chain of
// comparison operands joined by + and -. An opening parenthesis at this
// level re-enters the full grammar as an explicit group and replaces the
// running accumulator.
func (p *Parser) expression() (Expr, error) {
	lhs, err := p.comparisonExpr()
	if err != nil {
		return nil, err
	}

	for {
		if p.check(TokenOpenParentheses) {
			group, err := p.groupExpr()
			if err != nil {
				return nil, err
			}

			lhs = group
			continue
		}

		if !p.check(TokenPlus, TokenMinus) || p.peekAt(1).Typ == TokenSemicolon {
			return lhs, nil
		}

		op := p.next()
		rhs, err := p.comparisonExpr()
		if err != nil {
			return nil, err
		}

		lhs, err = p.combine(lhs, op, rhs)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) comparisonExpr() (Expr, error) {
	lhs, err := p.termExpr()
	if err != nil {
		return nil, err
	}

	for {
		cmp := p.check(TokenEquals, TokenNotEquals, TokenGreaterEquals,
			TokenLessEquals, TokenGreater, TokenLess)
		if !cmp || p.peekAt(1).Typ == TokenSemicolon {
			return lhs, nil
		}

		op := p.next()
		rhs, err := p.termExpr()
		if err != nil {
			return nil, err
		}

		lhs, err = p.combine(lhs, op, rhs)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) termExpr() (Expr, error) {
	lhs, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		if !p.check(TokenMulti, TokenDiv, TokenMod) || p.peekAt(1).Typ == TokenSemicolon {
			return lhs, nil
		}

		op := p.next()
		rhs, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		lhs, err = p.combine(lhs, op, rhs)
		if err != nil {
			return nil, err
		}
	}
}

// combine folds one operator/operand pair onto the accumulated left node.
// Operand types must be equal; the combined node keeps the operand type.
func (p *Parser) combine(lhs Expr, op Token, rhs Expr) (Expr, error) {
	if lhs.Type() != rhs.Type() {
		return nil, &TypeMismatchError{Loc: rhs.GetLocation(), Want: lhs.Type(), Got: rhs.Type()}
	}

	return &BinaryExpr{
		Operation: BinaryOp(op.Value),
		Op1:       lhs,
		Op2:       rhs,
		Typ:       lhs.Type(),
		Loc:       lhs.GetLocation(),
	}, nil
}

// unaryExpr handles an optional +/- prefix, right-associative by
// self-recursion. A bare operand passes through unchanged.
func (p *Parser) unaryExpr() (Expr, error) {
	if p.check(TokenPlus, TokenMinus) {
		op := p.next()

		operand, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			Operation: UnaryOp(op.Value),
			Operand:   operand,
			Loc:       op.Loc,
		}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	if p.eof() {
		return nil, &UnexpectedEOFError{Loc: p.endLoc()}
	}

	switch tok := p.peek(); tok.Typ {
	case TokenInteger:
		p.next()
		return &LiteralExpr{Value: tok.Value, Typ: Integer, Loc: tok.Loc}, nil
	case TokenFloat:
		p.next()
		return &LiteralExpr{Value: tok.Value, Typ: Float, Loc: tok.Loc}, nil
	case TokenString:
		p.next()
		return &LiteralExpr{Value: tok.Value, Typ: String, Loc: tok.Loc}, nil
	case TokenBool:
		p.next()
		return &LiteralExpr{Value: tok.Value, Typ: Bool, Loc: tok.Loc}, nil
	case TokenOpenParentheses:
		return p.groupExpr()
	case TokenIdentifier:
		p.next()

		opts := p.scopes.Lookup(tok.Value)
		if opts == nil {
			return nil, &UndeclaredVariableError{Loc: tok.Loc, Name: tok.Value}
		}

		return &VariableRef{Name: tok.Value, Typ: opts.Type, Loc: tok.Loc}, nil
	default:
		return nil, &UnexpectedTokenError{Loc: tok.Loc, Want: "expression", Got: tok.Value}
	}
}

// groupExpr parses a parenthesized sub-expression. The group is represented
// by its inner node.
func (p *Parser) groupExpr() (Expr, error) {
	if _, err := p.expect(TokenOpenParentheses); err != nil {
		return nil, err
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenCloseParentheses); err != nil {
		return nil, err
	}

	return expr, nil
}
