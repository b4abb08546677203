package ui

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"imagegallery/internal/notify"
	"imagegallery/internal/tmux"
)

const (
	previewMinCols = 20
	previewMinRows = 6
)

// previewSize is the text area available to the preview pane.
func (a *AppModel) previewSize() (cols, rows int) {
	cols, rows = a.width-4, a.height/2
	if cols < previewMinCols {
		cols = 60
	}
	if rows < previewMinRows {
		rows = 16
	}
	return cols, rows
}

// handleTogglePreview shows or hides the preview pane.
func (a *appModelAdapter) handleTogglePreview() tea.Cmd {
	if a.previewOn {
		a.previewOn = false
		a.previewItem, a.previewOut, a.previewErr = 0, "", nil
		return nil
	}
	if !a.Preview.Enabled() {
		return a.notify(notify.LevelError, "Preview is off: set preview.command")
	}
	a.previewOn = true
	return a.refreshPreview()
}

// refreshPreview starts rendering the selected item if the pane is open and
// shows something else.
func (a *AppModel) refreshPreview() tea.Cmd {
	if !a.previewOn {
		return nil
	}
	sel, ok := a.Gallery.Selected()
	if !ok {
		a.previewItem, a.previewOut, a.previewErr = 0, "", nil
		return nil
	}
	if sel.ID == a.previewItem {
		return nil
	}
	a.previewItem, a.previewOut, a.previewErr = sel.ID, "", nil
	cols, rows := a.previewSize()
	return renderPreviewCmd(a.ctx, a.Preview, sel, cols, rows)
}

// handlePreviewRendered keeps the output only if it is still wanted.
func (a *appModelAdapter) handlePreviewRendered(msg previewRenderedMsg) tea.Cmd {
	if !a.previewOn || msg.ItemID != a.previewItem {
		return nil
	}
	if msg.Err != nil {
		log.Printf("ui: preview item %d: %v", msg.ItemID, msg.Err)
	}
	a.previewOut, a.previewErr = msg.Output, msg.Err
	return nil
}

// handleOpenInTmux opens the preview command for the selection in a split.
// The pane opened last time is closed first.
func (a *appModelAdapter) handleOpenInTmux() tea.Cmd {
	sel, ok := a.Gallery.Selected()
	if !ok {
		return a.notify(notify.LevelError, "No image selected")
	}
	if !a.Preview.Enabled() {
		return a.notify(notify.LevelError, "Preview is off: set preview.command")
	}
	cols, rows := a.previewSize()
	return openInTmuxCmd(a.tmuxPane, sel, a.Preview.Command(sel.SourceURL, cols, rows))
}

func (a *appModelAdapter) handleTmuxOpened(msg tmuxOpenedMsg) tea.Cmd {
	switch {
	case errors.Is(msg.Err, tmux.ErrNotInTmux):
		return a.notify(notify.LevelError, "Not running inside tmux")
	case msg.Err != nil:
		log.Printf("ui: open in tmux: %v", msg.Err)
		return a.notify(notify.LevelError, "Could not open a tmux pane")
	}
	a.tmuxPane = msg.PaneID
	return a.notify(notify.LevelInfo, fmt.Sprintf("%s opened in pane %s", msg.Item.Label(), msg.PaneID))
}

func (a *AppModel) renderPreview() string {
	var body string
	switch {
	case a.previewItem == 0:
		body = Styles.Muted.Render("No image selected")
	case a.previewErr != nil:
		body = Styles.TitleWarning.Render("Preview failed: " + a.previewErr.Error())
	case a.previewOut == "":
		body = Styles.Muted.Render("Rendering…")
	default:
		body = a.previewOut
	}
	return Styles.Preview.Render(body)
}
