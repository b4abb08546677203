package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"imagegallery/internal/gallery"
	"imagegallery/internal/intent"
)

// GalleryView renders the URL input, the tile grid and the selection line.
// It does not own gallery state: the app hands it the current items after
// every update. Key presses it understands become intents.
type GalleryView struct {
	input   textinput.Model
	spinner spinner.Model
	loading bool

	items  []gallery.Item // physically present items, including removing ones
	cursor int            // index into the live items
	focus  AppMode
	width  int
}

// Ensure GalleryView implements View.
var _ View = (*GalleryView)(nil)

// NewGalleryView creates the view with the input focused.
func NewGalleryView() *GalleryView {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/photo.jpg"
	ti.Prompt = "URL › "
	ti.CharLimit = 0 // pasted URLs must arrive whole
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))

	return &GalleryView{input: ti, spinner: s, focus: ModeInput}
}

// Init implements View.
func (v *GalleryView) Init() tea.Cmd {
	return textinput.Blink
}

// SetItems replaces the rendered items and keeps the cursor in range.
func (v *GalleryView) SetItems(items []gallery.Item) {
	v.items = items
	if n := len(v.live()); v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
}

// SetFocus moves key focus between the input and the grid.
func (v *GalleryView) SetFocus(mode AppMode) tea.Cmd {
	v.focus = mode
	if mode == ModeInput {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// SetLoading starts or stops the spinner. Starting an already running
// spinner returns nil so only one tick chain exists.
func (v *GalleryView) SetLoading(loading bool) tea.Cmd {
	if loading == v.loading {
		return nil
	}
	v.loading = loading
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// Loading reports whether the spinner runs.
func (v *GalleryView) Loading() bool {
	return v.loading
}

// InputValue returns the text in the URL field.
func (v *GalleryView) InputValue() string {
	return v.input.Value()
}

// ClearInput empties the URL field.
func (v *GalleryView) ClearInput() {
	v.input.Reset()
}

// CursorItem returns the live item under the grid cursor.
func (v *GalleryView) CursorItem() (gallery.Item, bool) {
	live := v.live()
	if v.cursor < 0 || v.cursor >= len(live) {
		return gallery.Item{}, false
	}
	return live[v.cursor], true
}

// Cursor returns the cursor index into the live items.
func (v *GalleryView) Cursor() int {
	return v.cursor
}

func (v *GalleryView) live() []gallery.Item {
	out := make([]gallery.Item, 0, len(v.items))
	for _, it := range v.items {
		if it.State.Live() {
			out = append(out, it)
		}
	}
	return out
}

// Update implements View.
func (v *GalleryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.input.Width = min(max(msg.Width-16, 20), 100)
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		if v.focus == ModeGrid {
			return v, v.updateGrid(msg)
		}
		if msg.Type == tea.KeyEnter {
			url := v.input.Value()
			return v, func() tea.Msg {
				return intent.SubmitURL{URL: url, Source: intent.SourceTUI}
			}
		}
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *GalleryView) updateGrid(msg tea.KeyMsg) tea.Cmd {
	n := len(v.live())
	if n == 0 {
		return nil
	}
	cols := gridColumns(v.width)
	switch msg.String() {
	case "left", "h":
		v.cursor = max(v.cursor-1, 0)
	case "right", "l":
		v.cursor = min(v.cursor+1, n-1)
	case "up", "k":
		v.moveVertical(-cols)
	case "down", "j":
		v.moveVertical(cols)
	case "home", "g":
		v.cursor = 0
	case "end", "G":
		v.cursor = n - 1
	case "enter":
		it, ok := v.CursorItem()
		if !ok {
			return nil
		}
		return func() tea.Msg {
			return intent.Select{ID: it.ID, Source: intent.SourceTUI}
		}
	}
	return nil
}

// moveVertical moves the cursor one row over the drawn tiles, which include
// tiles still being removed. Landing on one of those continues in the same
// direction to the next live tile.
func (v *GalleryView) moveVertical(delta int) {
	cur, ok := v.CursorItem()
	if !ok {
		return
	}
	pos := -1
	for i, it := range v.items {
		if it.ID == cur.ID {
			pos = i
			break
		}
	}
	target := pos + delta
	if pos < 0 || target < 0 || target >= len(v.items) {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	for i := target; i >= 0 && i < len(v.items); i += step {
		if v.items[i].State.Live() {
			v.cursor = v.liveIndex(v.items[i].ID)
			return
		}
	}
}

// liveIndex is the cursor position of the live item id.
func (v *GalleryView) liveIndex(id int) int {
	n := 0
	for _, it := range v.items {
		if !it.State.Live() {
			continue
		}
		if it.ID == id {
			return n
		}
		n++
	}
	return v.cursor
}

// View implements View.
func (v *GalleryView) View() string {
	var b strings.Builder

	live := v.live()
	title := Styles.Title.Render("Image Gallery") + "  " + Styles.Muted.Render(countLabel(len(live)))
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(title + "\n")

	inputStyle := Styles.Input
	if v.focus == ModeInput {
		inputStyle = Styles.InputFocused
	}
	b.WriteString(inputStyle.Render(v.input.View()) + "\n")

	if len(v.items) > 0 {
		b.WriteString(v.renderGrid() + "\n")
	}
	if len(live) == 0 {
		b.WriteString("\n" + Styles.Empty.Render("The gallery is empty") + "\n")
		b.WriteString(Styles.Hint.Render("Add images using the field above") + "\n\n")
	}

	b.WriteString(v.selectionLine())
	return b.String()
}

func (v *GalleryView) renderGrid() string {
	cursorID := -1
	if v.focus == ModeGrid {
		if it, ok := v.CursorItem(); ok {
			cursorID = it.ID
		}
	}
	spin := ""
	if v.loading {
		spin = v.spinner.View()
	}

	cols := gridColumns(v.width)
	var rows []string
	var row []string
	for _, it := range v.items {
		row = append(row, renderTile(it, tileState{cursor: it.ID == cursorID, spinner: spin}))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *GalleryView) selectionLine() string {
	for _, it := range v.items {
		if it.Selected {
			return Styles.Normal.Render(it.Label() + " selected")
		}
	}
	return Styles.Muted.Render("No image selected")
}
