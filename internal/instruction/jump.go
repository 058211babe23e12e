package instruction

// Jump is the conditional jump mnemonic of a C-instruction.
// Source text matches mnemonics case-insensitively, the parsed form is canonical.
type Jump byte

// The jump conditions of the Hack machine, NoJump marks an absent jump part.
const (
	NoJump Jump = iota
	JMP
	JGT
	JEQ
	JLT
	JGE
	JLE
	JNE
)

func (j Jump) String() string {
	switch j {
	case JMP:
		return "JMP"
	case JGT:
		return "JGT"
	case JEQ:
		return "JEQ"
	case JLT:
		return "JLT"
	case JGE:
		return "JGE"
	case JLE:
		return "JLE"
	case JNE:
		return "JNE"
	default:
		return ""
	}
}
