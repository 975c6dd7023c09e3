package zelkel

import "fmt"

// Location points at the first rune of a token in the source file.
// Lines and columns are 1-based.
type Location struct {
	Line int
	Col  int
}

func (l *Location) String() string {
	if l == nil {
		return "?:?"
	}

	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}
