// Package instruction contains the instruction model of the Hack assembly language.
package instruction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxAddress is the highest address that a literal A-instruction operand can load.
const MaxAddress = 32767

// ErrSymbolicOperand is returned when the numeric value of a symbolic
// A-instruction operand is requested before symbol resolution.
var ErrSymbolicOperand = errors.New("operand is symbolic")

// Instruction is implemented by all instruction variants of a program.
type Instruction interface {
	// String returns the canonical assembly text of the instruction.
	String() string
}

// Label declares a symbolic marker for the current program location,
// written as a parenthesized symbol on its own line.
type Label struct {
	Symbol string
}

// AtInstruction loads an address into the A register, given either as a
// decimal literal or as a symbolic name to be resolved later.
// Exactly one of Symbol and Literal is set.
type AtInstruction struct {
	Symbol  string
	Literal string // decimal digits as written, leading zeros preserved
}

// CInstruction computes a value and optionally stores it into one or more
// registers and jumps based on the result.
type CInstruction struct {
	Dest []Register  // destination registers in written order, empty if absent
	Comp Computation // required
	Jump Jump        // NoJump if absent
}

func (l Label) String() string {
	return "(" + l.Symbol + ")"
}

func (a AtInstruction) String() string {
	if a.Symbol != "" {
		return "@" + a.Symbol
	}
	return "@" + a.Literal
}

// Value returns the numeric value of a literal operand.
// It returns an error for symbolic operands and for literals that exceed
// the addressable range, a check that the grammar itself does not perform.
func (a AtInstruction) Value() (uint16, error) {
	if a.Literal == "" {
		return 0, fmt.Errorf("getting value of @%s: %w", a.Symbol, ErrSymbolicOperand)
	}

	value, err := strconv.ParseUint(a.Literal, 10, 64)
	if err != nil || value > MaxAddress {
		return 0, fmt.Errorf("literal %s exceeds the maximum address %d", a.Literal, MaxAddress)
	}
	return uint16(value), nil
}

func (c CInstruction) String() string {
	var sb strings.Builder
	for _, register := range c.Dest {
		sb.WriteString(register.String())
	}
	if len(c.Dest) > 0 {
		sb.WriteByte('=')
	}

	sb.WriteString(c.Comp.String())

	if c.Jump != NoJump {
		sb.WriteByte(';')
		sb.WriteString(c.Jump.String())
	}
	return sb.String()
}
