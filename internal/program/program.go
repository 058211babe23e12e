// Package program represents a parsed Hack assembly program.
package program

import (
	"github.com/phoony/hack-asm/internal/instruction"
)

// Program contains the instructions of one source file in source order.
// Blank and comment-only lines are not represented.
type Program struct {
	Instructions []instruction.Instruction
}

// New creates a new empty program.
func New() *Program {
	return &Program{}
}

// Add appends an instruction to the program.
func (p *Program) Add(ins instruction.Instruction) {
	p.Instructions = append(p.Instructions, ins)
}
