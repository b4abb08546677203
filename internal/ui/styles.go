package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, displayed tiles
	ColorHighlight = "205" // Magenta - selection, cursor
	ColorDanger    = "196" // Red - errors, confirmations
	ColorMuted     = "241" // Gray - hints, dimmed text
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "238" // Dark gray - tiles being removed
	ColorWarning   = "208" // Orange - pending tiles
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style

	BoxDanger lipgloss.Style // confirmation modal

	Muted  lipgloss.Style
	Normal lipgloss.Style
	Hint   lipgloss.Style
	Status lipgloss.Style
	Empty  lipgloss.Style
	Label  lipgloss.Style

	Input        lipgloss.Style // URL input frame
	InputFocused lipgloss.Style

	Tile         lipgloss.Style
	TileCursor   lipgloss.Style // tile under the grid cursor
	TileSelected lipgloss.Style
	TileRemoving lipgloss.Style
	Badge        lipgloss.Style
	BadgeActive  lipgloss.Style

	ToastInfo  lipgloss.Style
	ToastError lipgloss.Style

	Preview lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Input: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	InputFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Tile: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TileCursor: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	TileSelected: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	TileRemoving: lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Foreground(lipgloss.Color(ColorDim)).
		Faint(true).
		Padding(0, 1),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	BadgeActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	ToastInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorAccent)).
		PaddingLeft(1),
	ToastError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorDanger)).
		PaddingLeft(1),
	Preview: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
}
