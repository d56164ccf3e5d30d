package domain

// Result is the outcome of a confirmation or of a traversal.
type Result int

const (
	// Advance continues with the next node in traversal order.
	Advance Result = iota
	// Stop abandons the rest of the current document.
	Stop
	// Quit terminates the program.
	Quit
)

func (r Result) String() string {
	switch r {
	case Advance:
		return "advance"
	case Stop:
		return "stop"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}
