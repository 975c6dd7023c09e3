package zelkel

// ValueType is the closed set of zelkel value types. Compatibility is exact
// equality; there is no implicit coercion between types.
type ValueType int

const (
	Integer ValueType = iota
	Float
	String
	Bool
)

var typeNames = map[ValueType]string{
	Integer: "int",
	Float:   "float",
	String:  "str",
	Bool:    "bool",
}

func (t ValueType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "~unknown"
}

var typeTable = map[string]ValueType{
	"int":   Integer,
	"str":   String,
	"float": Float,
	"bool":  Bool,
}

func parseType(tok Token) (ValueType, error) {
	if tok.Typ != TokenIdentifier {
		return 0, &UnexpectedTokenError{Loc: tok.Loc, Want: "type name", Got: tok.Value}
	}

	t, ok := typeTable[tok.Value]
	if !ok {
		return 0, &UnknownTypeError{Loc: tok.Loc, Name: tok.Value}
	}

	return t, nil
}
