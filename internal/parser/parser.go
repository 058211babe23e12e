// Package parser implements the grammar of the Hack assembly language.
//
// The grammar rules use ordered choice: for the @ operand a digit run is
// tried as a literal before a symbol, and a computation is tried as a
// constant, then a unary form, then a binary form, then a bare register.
// The first matching alternative wins.
package parser

import (
	"strings"

	"github.com/phoony/hack-asm/internal/instruction"
	"github.com/phoony/hack-asm/internal/program"
)

// Parse parses Hack assembly source text into a program.
// Parsing is whole-or-nothing: the first syntax error aborts the parse
// and no partial instruction sequence is returned.
func Parse(input string) (*program.Program, error) {
	prog := program.New()

	for i, text := range strings.Split(input, "\n") {
		ins, err := parseLine(i+1, text)
		if err != nil {
			return nil, err
		}
		if ins != nil {
			prog.Add(ins)
		}
	}
	return prog, nil
}

// parseLine parses a single source line into at most one instruction.
// Blank and comment-only lines yield a nil instruction.
func parseLine(number int, text string) (instruction.Instruction, error) {
	l := newLine(number, text)
	if l.atEnd() {
		return nil, nil
	}

	var ins instruction.Instruction
	var err error

	switch l.peek() {
	case '(':
		ins, err = l.label()
	case '@':
		ins, err = l.atInstruction()
	default:
		ins, err = l.cInstruction()
	}
	if err != nil {
		return nil, err
	}

	if !l.atEnd() {
		return nil, l.syntaxError("end of line or comment")
	}
	return ins, nil
}

// label parses a label declaration: a symbol enclosed in parentheses.
func (l *line) label() (instruction.Instruction, error) {
	l.pos++ // (

	symbol, ok := l.symbol()
	if !ok {
		return nil, l.syntaxError("symbol")
	}
	if !l.consume(')') {
		return nil, l.syntaxError("')'")
	}
	return instruction.Label{Symbol: symbol}, nil
}

// atInstruction parses an @ instruction. A pure digit operand is taken as
// a literal, anything else must be a symbol.
func (l *line) atInstruction() (instruction.Instruction, error) {
	l.pos++ // @

	if literal, ok := l.literal(); ok {
		return instruction.AtInstruction{Literal: literal}, nil
	}
	if symbol, ok := l.symbol(); ok {
		return instruction.AtInstruction{Symbol: symbol}, nil
	}
	return nil, l.syntaxError("literal or symbol")
}

// cInstruction parses a C-instruction: an optional destination part,
// a required computation and an optional jump part.
func (l *line) cInstruction() (instruction.Instruction, error) {
	ins := instruction.CInstruction{}

	if dest, ok := l.destination(); ok {
		ins.Dest = dest
	}

	comp, err := l.computation()
	if err != nil {
		return nil, err
	}
	ins.Comp = comp

	if l.consume(';') {
		jump, ok := l.jump()
		if !ok {
			return nil, l.syntaxError("jump mnemonic")
		}
		ins.Jump = jump
	}
	return ins, nil
}

// destination matches one to three register tokens followed by '='.
// Without the trailing '=' the registers belong to the computation,
// so the cursor is restored on a failed match.
func (l *line) destination() ([]instruction.Register, bool) {
	save := l.pos

	var dest []instruction.Register
	for len(dest) < 3 {
		register, ok := l.register()
		if !ok {
			break
		}
		dest = append(dest, register)
	}

	if len(dest) == 0 || !l.consume('=') {
		l.pos = save
		return nil, false
	}
	return dest, true
}

// computation matches the alternatives in grammar order: constant,
// unary, binary, bare register.
func (l *line) computation() (instruction.Computation, error) {
	if comp, ok := l.constant(); ok {
		return comp, nil
	}
	if comp, ok := l.unary(); ok {
		return comp, nil
	}
	if comp, ok := l.binary(); ok {
		return comp, nil
	}
	if register, ok := l.register(); ok {
		return instruction.Computation{Op: instruction.Identity, Left: register}, nil
	}
	return instruction.Computation{}, l.syntaxError("computation")
}

// constant matches one of the constants 1, 0 and -1.
func (l *line) constant() (instruction.Computation, bool) {
	save := l.pos

	switch {
	case l.consume('1'):
		return instruction.Computation{Op: instruction.One}, true
	case l.consume('0'):
		return instruction.Computation{Op: instruction.Zero}, true
	case l.consume('-'):
		if l.consume('1') {
			return instruction.Computation{Op: instruction.NegOne}, true
		}
	}

	l.pos = save
	return instruction.Computation{}, false
}

// unary matches the prefix forms !r and -r and the postfix forms r+1 and r-1.
func (l *line) unary() (instruction.Computation, bool) {
	save := l.pos

	if l.consume('!') {
		if register, ok := l.register(); ok {
			return instruction.Computation{Op: instruction.Not, Left: register}, true
		}
		l.pos = save
		return instruction.Computation{}, false
	}

	if l.consume('-') {
		if register, ok := l.register(); ok {
			return instruction.Computation{Op: instruction.Neg, Left: register}, true
		}
		l.pos = save
		return instruction.Computation{}, false
	}

	register, ok := l.register()
	if !ok {
		l.pos = save
		return instruction.Computation{}, false
	}

	op := instruction.Inc
	if !l.consume('+') {
		if !l.consume('-') {
			l.pos = save
			return instruction.Computation{}, false
		}
		op = instruction.Dec
	}
	if !l.consume('1') {
		l.pos = save
		return instruction.Computation{}, false
	}
	return instruction.Computation{Op: op, Left: register}, true
}

// binary matches two register operands joined by one of + - & |.
// Both operand positions accept any register, restricting the pairs to
// ones the hardware supports is left to downstream validation.
func (l *line) binary() (instruction.Computation, bool) {
	save := l.pos

	left, ok := l.register()
	if !ok {
		l.pos = save
		return instruction.Computation{}, false
	}

	var op instruction.CompOp
	switch {
	case l.consume('+'):
		op = instruction.Add
	case l.consume('-'):
		op = instruction.Sub
	case l.consume('&'):
		op = instruction.And
	case l.consume('|'):
		op = instruction.Or
	default:
		l.pos = save
		return instruction.Computation{}, false
	}

	right, ok := l.register()
	if !ok {
		l.pos = save
		return instruction.Computation{}, false
	}
	return instruction.Computation{Op: op, Left: left, Right: right}, true
}

var jumps = map[string]instruction.Jump{
	"JMP": instruction.JMP,
	"JGT": instruction.JGT,
	"JEQ": instruction.JEQ,
	"JLT": instruction.JLT,
	"JGE": instruction.JGE,
	"JLE": instruction.JLE,
	"JNE": instruction.JNE,
}

// jump matches one of the seven jump mnemonics, case-insensitively.
func (l *line) jump() (instruction.Jump, bool) {
	l.skipSpace()

	start := l.pos
	for isAlpha(l.peek()) {
		l.pos++
	}

	jump, ok := jumps[strings.ToUpper(l.text[start:l.pos])]
	if !ok {
		l.pos = start
		return instruction.NoJump, false
	}
	return jump, true
}
