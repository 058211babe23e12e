package parser

import "fmt"

// SyntaxError describes a grammar violation at a source position.
// Line and Column are 1-based, Expected names the construct that the
// grammar required at that position.
type SyntaxError struct {
	Line     int
	Column   int
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: expected %s", e.Line, e.Column, e.Expected)
}
