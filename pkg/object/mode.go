package object

// Mode selects when a wrapped method's ancestor implementation runs.
// It is fixed when the wrapper is created and never changes.
type Mode uint8

const (
	// ModeNone marks a plain method with no super-call behavior.
	ModeNone Mode = iota
	// ModeBefore runs the ancestor implementation before the method body.
	ModeBefore
	// ModeAfter runs the ancestor implementation after the method body.
	ModeAfter
)

func (m Mode) String() string {
	switch m {
	case ModeBefore:
		return "before"
	case ModeAfter:
		return "after"
	default:
		return "none"
	}
}
