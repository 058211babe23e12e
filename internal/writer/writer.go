// Package writer implements assembly listing output functionality.
package writer

import (
	"fmt"
	"io"

	"github.com/phoony/hack-asm/internal/instruction"
	"github.com/phoony/hack-asm/internal/program"
)

const indentation = "  "

// Writer writes a parsed program as canonical assembly text.
type Writer struct {
	prog    *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	LineNumbers bool // prefix instructions with their sequence number
	Indent      bool // indent instructions, keep labels at column 0
}

// New creates a new writer.
func New(prog *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		prog:    prog,
		options: options,
		writer:  writer,
	}
}

// Write writes all instructions of the program, one per line.
// The output follows the grammar's own token order and parses back to an
// equal program.
func (w *Writer) Write() error {
	for i, ins := range w.prog.Instructions {
		if err := w.writeInstruction(i, ins); err != nil {
			return fmt.Errorf("writing instruction %d: %w", i, err)
		}
	}
	return nil
}

func (w *Writer) writeInstruction(index int, ins instruction.Instruction) error {
	line := ins.String()

	if w.options.Indent {
		if _, isLabel := ins.(instruction.Label); !isLabel {
			line = indentation + line
		}
	}
	if w.options.LineNumbers {
		line = fmt.Sprintf("%4d %s", index, line)
	}

	_, err := fmt.Fprintln(w.writer, line)
	return err
}
