package program

import (
	"testing"

	"github.com/phoony/hack-asm/internal/instruction"
	"github.com/retroenv/retrogolib/assert"
)

func TestProgram_Add(t *testing.T) {
	prog := New()
	assert.Empty(t, prog.Instructions)

	prog.Add(instruction.Label{Symbol: "LOOP"})
	prog.Add(instruction.AtInstruction{Symbol: "LOOP"})

	assert.Len(t, prog.Instructions, 2)
	assert.Equal(t, instruction.Label{Symbol: "LOOP"}, prog.Instructions[0])
	assert.Equal(t, instruction.AtInstruction{Symbol: "LOOP"}, prog.Instructions[1])
}
