package core

// Key is a single logical keypress. Printable keys carry their rune
// value; non-printable keys use the negative constants below
type Key int32

const (
	KeyNone Key = 0

	KeyUp    Key = -(iota + 1) // -2
	KeyDown
	KeyLeft
	KeyRight
	KeyInterrupt // Ctrl+C / Escape: immediate quit
)

// Rune returns the printable rune for the key, or 0 for special keys
func (k Key) Rune() rune {
	if k > 0 {
		return rune(k)
	}
	return 0
}
