package zelkel

type AST struct {
	Filename   string
	Statements []Stmt
}

// Expr is a fully typed expression node. Nodes are built bottom-up during
// the parse and never mutated afterwards.
type Expr interface {
	Type() ValueType
	GetLocation() *Location
}

type LiteralExpr struct {
	Value string
	Typ   ValueType
	Loc   *Location
}

func (e *LiteralExpr) Type() ValueType {
	return e.Typ
}

func (e *LiteralExpr) GetLocation() *Location {
	return e.Loc
}

// VariableRef carries the declared type of the variable it resolves to.
type VariableRef struct {
	Name string
	Typ  ValueType
	Loc  *Location
}

func (e *VariableRef) Type() ValueType {
	return e.Typ
}

func (e *VariableRef) GetLocation() *Location {
	return e.Loc
}

type UnaryOp string

const (
	UnaryPositive UnaryOp = "+"
	UnaryNegative UnaryOp = "-"
)

type UnaryExpr struct {
	Operation UnaryOp
	Operand   Expr
	Loc       *Location
}

func (e *UnaryExpr) Type() ValueType {
	return e.Operand.Type()
}

func (e *UnaryExpr) GetLocation() *Location {
	return e.Loc
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
	BinaryModulo         BinaryOp = "%"
	BinaryEquals         BinaryOp = "=="
	BinaryNotEquals      BinaryOp = "!="
	BinaryGreaterEquals  BinaryOp = ">="
	BinaryLessEquals     BinaryOp = "<="
	BinaryGreater        BinaryOp = ">"
	BinaryLess           BinaryOp = "<"
)

// BinaryExpr always carries both operands; the operands' types are equal
// and the node's type is the operand type.
type BinaryExpr struct {
	Operation BinaryOp
	Op1       Expr
	Op2       Expr
	Typ       ValueType
	Loc       *Location
}

func (e *BinaryExpr) Type() ValueType {
	return e.Typ
}

func (e *BinaryExpr) GetLocation() *Location {
	return e.Loc
}

// Stmt is a top-level or function-body statement. Loc is the position of
// the statement's first token.
type Stmt interface {
	GetLocation() *Location
}

type VariableDecl struct {
	Name         string
	Mutable      bool
	DeclaredType ValueType
	Value        Expr
	Loc          *Location
}

func (s *VariableDecl) GetLocation() *Location {
	return s.Loc
}

type ParamDecl struct {
	Name string
	Typ  ValueType
	Loc  *Location
}

type FuncDecl struct {
	Name       string
	Params     []ParamDecl
	ReturnType ValueType
	Body       []Stmt
	Loc        *Location
}

func (s *FuncDecl) GetLocation() *Location {
	return s.Loc
}

type ExprStatement struct {
	Value Expr
	Loc   *Location
}

func (s *ExprStatement) Type() ValueType {
	return s.Value.Type()
}

func (s *ExprStatement) GetLocation() *Location {
	return s.Loc
}
