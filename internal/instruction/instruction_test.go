package instruction

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		name string
		ins  Instruction
		want string
	}{
		{
			name: "label",
			ins:  Label{Symbol: "LOOP"},
			want: "(LOOP)",
		},
		{
			name: "at instruction with literal",
			ins:  AtInstruction{Literal: "17"},
			want: "@17",
		},
		{
			name: "at instruction with symbol",
			ins:  AtInstruction{Symbol: "foo.bar$1"},
			want: "@foo.bar$1",
		},
		{
			name: "computation only",
			ins:  CInstruction{Comp: Computation{Op: Identity, Left: D}},
			want: "D",
		},
		{
			name: "destination and computation",
			ins: CInstruction{
				Dest: []Register{A, M, D},
				Comp: Computation{Op: And, Left: D, Right: M},
			},
			want: "AMD=D&M",
		},
		{
			name: "computation and jump",
			ins: CInstruction{
				Comp: Computation{Op: Zero},
				Jump: JMP,
			},
			want: "0;JMP",
		},
		{
			name: "all parts",
			ins: CInstruction{
				Dest: []Register{M},
				Comp: Computation{Op: Inc, Left: M},
				Jump: JGE,
			},
			want: "M=M+1;JGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ins.String())
		})
	}
}

func TestComputation_String(t *testing.T) {
	tests := []struct {
		comp Computation
		want string
	}{
		{Computation{Op: Zero}, "0"},
		{Computation{Op: One}, "1"},
		{Computation{Op: NegOne}, "-1"},
		{Computation{Op: Identity, Left: A}, "A"},
		{Computation{Op: Not, Left: M}, "!M"},
		{Computation{Op: Neg, Left: D}, "-D"},
		{Computation{Op: Inc, Left: A}, "A+1"},
		{Computation{Op: Dec, Left: M}, "M-1"},
		{Computation{Op: Add, Left: D, Right: A}, "D+A"},
		{Computation{Op: Sub, Left: A, Right: D}, "A-D"},
		{Computation{Op: And, Left: D, Right: M}, "D&M"},
		{Computation{Op: Or, Left: M, Right: D}, "M|D"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.comp.String())
		})
	}
}

func TestJump_String(t *testing.T) {
	tests := []struct {
		jump Jump
		want string
	}{
		{NoJump, ""},
		{JMP, "JMP"},
		{JGT, "JGT"},
		{JEQ, "JEQ"},
		{JLT, "JLT"},
		{JGE, "JGE"},
		{JLE, "JLE"},
		{JNE, "JNE"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.jump.String())
	}
}

func TestAtInstruction_Value(t *testing.T) {
	tests := []struct {
		name    string
		ins     AtInstruction
		want    uint16
		wantErr bool
	}{
		{name: "small literal", ins: AtInstruction{Literal: "17"}, want: 17},
		{name: "zero", ins: AtInstruction{Literal: "0"}, want: 0},
		{name: "leading zeros", ins: AtInstruction{Literal: "00042"}, want: 42},
		{name: "maximum address", ins: AtInstruction{Literal: "32767"}, want: 32767},
		{name: "address overflow", ins: AtInstruction{Literal: "32768"}, wantErr: true},
		{name: "huge literal", ins: AtInstruction{Literal: "99999999999999999999"}, wantErr: true},
		{name: "symbolic operand", ins: AtInstruction{Symbol: "loop"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.ins.Value()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestAtInstruction_ValueSymbolicError(t *testing.T) {
	_, err := AtInstruction{Symbol: "loop"}.Value()
	assert.True(t, errors.Is(err, ErrSymbolicOperand))
}
