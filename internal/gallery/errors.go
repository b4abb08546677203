package gallery

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownItem is returned when an operation names an item that is not
	// live. It signals a caller bug, not bad user input.
	ErrUnknownItem = errors.New("gallery: unknown item")
	// ErrInvalidTransition is returned for an illegal lifecycle step.
	ErrInvalidTransition = errors.New("gallery: invalid state transition")
)

// Reason classifies a ValidationError.
type Reason int

const (
	ReasonEmpty Reason = iota + 1
	ReasonNotImage
)

// ValidationError reports URL input that was rejected before anything was
// added. The gallery is unchanged when it is returned.
type ValidationError struct {
	Input      string
	Reason     Reason
	Suggestion string // closest known extension (".jpg"), if any
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "Please enter an image URL"
	default:
		if e.Suggestion != "" {
			return fmt.Sprintf("Please enter a valid image URL (did you mean %s?)", e.Suggestion)
		}
		return "Please enter a valid image URL"
	}
}

// LoadError reports an item whose image could not be loaded. The item has
// already been removed when it is returned.
type LoadError struct {
	ItemID int
	URL    string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %d (%s): %v", e.ItemID, e.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text shown to the user for err. Validation and load
// errors have fixed wording; anything else falls back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	var lerr *LoadError
	if errors.As(err, &lerr) {
		return "Could not load the image. Check the URL."
	}
	return err.Error()
}
