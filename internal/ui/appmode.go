package ui

// AppMode is the focus target that receives keys. Keybindings can be
// limited to a mode.
type AppMode int

const (
	ModeInput AppMode = iota
	ModeGrid
)

func (m AppMode) String() string {
	switch m {
	case ModeInput:
		return "Input"
	case ModeGrid:
		return "Grid"
	default:
		return "Unknown"
	}
}
