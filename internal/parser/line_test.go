package parser

import (
	"testing"

	"github.com/phoony/hack-asm/internal/instruction"
	"github.com/retroenv/retrogolib/assert"
)

func TestLine_Symbol(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		rest  byte
	}{
		{"plain name", "LOOP)", "LOOP", ')'},
		{"special characters", "foo.bar$1+", "foo.bar$1", '+'},
		{"underscore start", "_tmp0 ", "_tmp0", ' '},
		{"hash and percent", "#a%b=", "#a%b", '='},
		{"stops at slash", "end//c", "end", '/'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLine(1, tt.input)
			symbol, ok := l.symbol()
			assert.True(t, ok)
			assert.Equal(t, tt.want, symbol)
			assert.Equal(t, tt.rest, l.peek())
		})
	}
}

func TestLine_SymbolNoMatch(t *testing.T) {
	for _, input := range []string{"", "1abc", "+x", "(y)"} {
		l := newLine(1, input)
		_, ok := l.symbol()
		assert.False(t, ok)
	}
}

func TestLine_Literal(t *testing.T) {
	l := newLine(1, " 0123x")
	literal, ok := l.literal()

	assert.True(t, ok)
	assert.Equal(t, "0123", literal)
	assert.Equal(t, byte('x'), l.peek())

	_, ok = l.literal()
	assert.False(t, ok)
}

func TestLine_Register(t *testing.T) {
	l := newLine(1, "aM d")

	for _, want := range []instruction.Register{instruction.A, instruction.M, instruction.D} {
		register, ok := l.register()
		assert.True(t, ok)
		assert.Equal(t, want, register)
	}

	_, ok := l.register()
	assert.False(t, ok)
}

func TestLine_Consume(t *testing.T) {
	l := newLine(1, "  =x")

	assert.False(t, l.consume('x'))
	assert.True(t, l.consume('='))
	assert.True(t, l.consume('x'))
	assert.False(t, l.consume('x'))
}

func TestLine_AtEnd(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{" \t ", true},
		{"// comment", true},
		{"  // comment", true},
		{"/", false},
		{"x", false},
		{" x // comment", false},
	}

	for _, tt := range tests {
		l := newLine(1, tt.input)
		assert.Equal(t, tt.want, l.atEnd())
	}
}

func TestLine_CarriageReturn(t *testing.T) {
	l := newLine(1, "@1\r")
	l.pos = 1

	literal, ok := l.literal()
	assert.True(t, ok)
	assert.Equal(t, "1", literal)
	assert.True(t, l.atEnd())
}

func TestLine_SyntaxErrorPosition(t *testing.T) {
	l := newLine(3, "D=  ?")
	l.pos = 2

	err := l.syntaxError("computation")
	assert.Equal(t, 3, err.Line)
	assert.Equal(t, 5, err.Column)
	assert.Equal(t, "computation", err.Expected)
}
