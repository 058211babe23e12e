package parser

import (
	"strings"

	"github.com/phoony/hack-asm/internal/instruction"
)

// line is a cursor over a single source line. Grammar rules consume tokens
// from the front and report positions relative to the full line.
// The grammar is restricted to ASCII, so the cursor operates on bytes.
type line struct {
	number int
	text   string
	pos    int
}

func newLine(number int, text string) *line {
	return &line{
		number: number,
		text:   strings.TrimSuffix(text, "\r"),
	}
}

// skipSpace advances over insignificant whitespace between tokens.
func (l *line) skipSpace() {
	for l.pos < len(l.text) && (l.text[l.pos] == ' ' || l.text[l.pos] == '\t') {
		l.pos++
	}
}

// atEnd reports whether only whitespace or a trailing comment remains.
func (l *line) atEnd() bool {
	l.skipSpace()
	return l.pos == len(l.text) || strings.HasPrefix(l.text[l.pos:], "//")
}

// peek returns the next byte without consuming it, 0 at the end of the line.
func (l *line) peek() byte {
	if l.pos >= len(l.text) {
		return 0
	}
	return l.text[l.pos]
}

// consume matches a single expected byte, skipping leading whitespace.
func (l *line) consume(b byte) bool {
	l.skipSpace()
	if l.pos < len(l.text) && l.text[l.pos] == b {
		l.pos++
		return true
	}
	return false
}

// register matches one of the register tokens A, M or D, case-insensitively.
func (l *line) register() (instruction.Register, bool) {
	l.skipSpace()

	switch l.peek() {
	case 'A', 'a':
		l.pos++
		return instruction.A, true
	case 'M', 'm':
		l.pos++
		return instruction.M, true
	case 'D', 'd':
		l.pos++
		return instruction.D, true
	default:
		return 0, false
	}
}

// literal matches a run of one or more ASCII digits.
func (l *line) literal() (string, bool) {
	l.skipSpace()

	start := l.pos
	for isDigit(l.peek()) {
		l.pos++
	}
	if l.pos == start {
		return "", false
	}
	return l.text[start:l.pos], true
}

// symbol matches a symbol token: an alphabetic character or one of . _ $ % #
// followed by any number of alphanumeric characters or those same specials.
func (l *line) symbol() (string, bool) {
	l.skipSpace()

	if !isSymbolStart(l.peek()) {
		return "", false
	}
	start := l.pos
	l.pos++
	for isSymbolStart(l.peek()) || isDigit(l.peek()) {
		l.pos++
	}
	return l.text[start:l.pos], true
}

// syntaxError creates a syntax error pointing at the current position.
func (l *line) syntaxError(expected string) *SyntaxError {
	l.skipSpace()
	return &SyntaxError{
		Line:     l.number,
		Column:   l.pos + 1,
		Expected: expected,
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSymbolStart(b byte) bool {
	switch b {
	case '.', '_', '$', '%', '#':
		return true
	default:
		return isAlpha(b)
	}
}
