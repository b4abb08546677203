// Package intent defines the user intents shared by every input surface.
// The terminal UI produces them from key presses; the HTTP control API
// produces them from requests and delivers them with tea.Program.Send.
package intent

// Source identifies the input surface an intent came from.
type Source string

const (
	SourceTUI     Source = "tui"
	SourceAPI     Source = "api"
	SourceStartup Source = "startup"
)

// SubmitURL asks the gallery to add an image.
type SubmitURL struct {
	URL    string
	Source Source
}

// Select toggles the selection of an item.
type Select struct {
	ID     int
	Source Source
}

// DeleteSelected deletes the selected item, if any.
type DeleteSelected struct {
	Source Source
}

// ClearAll removes every item. Confirmed is false when the intent still needs
// the confirmation prompt; the control API only sends confirmed intents.
type ClearAll struct {
	Confirmed bool
	Source    Source
}

// SeedSamples adds the sample images not already shown. Limit > 0 seeds only
// the first Limit samples.
type SeedSamples struct {
	Limit  int
	Source Source
}
