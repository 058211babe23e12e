package instruction

// Register represents one of the three registers a computation can operate on.
// Source text matches registers case-insensitively, the parsed form is canonical.
type Register byte

// The registers of the Hack machine.
const (
	A Register = iota
	M
	D
)

func (r Register) String() string {
	switch r {
	case A:
		return "A"
	case M:
		return "M"
	default:
		return "D"
	}
}
