package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; it follows Bubble Tea's Init/Update/View
// but returns itself as a View so the app can hold concrete types.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
