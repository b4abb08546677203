package ui

import "imagegallery/internal/gallery"

// Intents (SubmitURL, Select, DeleteSelected, ClearAll, SeedSamples) are
// defined in package intent so the control API can send them too.

// finalizeMsg physically removes items once their removal delay elapsed.
type finalizeMsg struct {
	IDs []int
}

// DismissNoticeMsg removes a toast when its timeout elapses.
type DismissNoticeMsg struct {
	ID string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// TogglePreviewMsg shows or hides the preview pane (SPC p).
type TogglePreviewMsg struct{}

// OpenInTmuxMsg opens the selected image's preview command in a tmux split (SPC o).
type OpenInTmuxMsg struct{}

// previewRenderedMsg carries the rendered preview for an item.
type previewRenderedMsg struct {
	ItemID int
	Output string
	Err    error
}

// tmuxOpenedMsg reports the result of OpenInTmuxMsg.
type tmuxOpenedMsg struct {
	Item   gallery.Item
	PaneID string
	Err    error
}
