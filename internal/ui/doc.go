// Package ui is the terminal front end of the image gallery, built on
// Bubble Tea.
//
// Core pieces:
//   - AppModel: root model; owns the gallery and applies intents to it
//   - GalleryView: URL input, tile grid and selection line (Elm-style View)
//   - FocusManager: tab rotation between the input and the grid
//   - OverlayStack: modal views (the clear-all confirmation) with a dismiss key
//   - KeybindRegistry/KeyHandler: single keys and SPC leader sequences
//
// All gallery mutations happen inside AppModel's Update. Background work
// (image probes, previews, removal timers, toast timeouts) runs as tea.Cmds
// that report back with messages.
package ui
