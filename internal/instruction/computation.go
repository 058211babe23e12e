package instruction

// CompOp enumerates the computation forms of a C-instruction.
type CompOp byte

// The computation forms: constants, a bare register, unary and binary operators.
const (
	Zero CompOp = iota
	One
	NegOne
	Identity
	Not
	Neg
	Inc
	Dec
	Add
	Sub
	And
	Or
)

// Computation is the required middle part of a C-instruction.
// Left is set for all register forms, Right only for binary operators,
// with the written operand order preserved.
type Computation struct {
	Op    CompOp
	Left  Register
	Right Register
}

func (c Computation) String() string {
	switch c.Op {
	case Zero:
		return "0"
	case One:
		return "1"
	case NegOne:
		return "-1"
	case Identity:
		return c.Left.String()
	case Not:
		return "!" + c.Left.String()
	case Neg:
		return "-" + c.Left.String()
	case Inc:
		return c.Left.String() + "+1"
	case Dec:
		return c.Left.String() + "-1"
	case Add:
		return c.Left.String() + "+" + c.Right.String()
	case Sub:
		return c.Left.String() + "-" + c.Right.String()
	case And:
		return c.Left.String() + "&" + c.Right.String()
	default:
		return c.Left.String() + "|" + c.Right.String()
	}
}
