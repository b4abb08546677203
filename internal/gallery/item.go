package gallery

import "fmt"

// State is the lifecycle state of a gallery item.
//
//	Pending -> Displayed -> Removing -> Removed
//	Pending -> Removing (deleted before the load resolved)
//	Pending -> Removed  (load failed)
type State int

const (
	StatePending State = iota
	StateDisplayed
	StateRemoving
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDisplayed:
		return "displayed"
	case StateRemoving:
		return "removing"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// MarshalText renders the state by name in JSON snapshots.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Live reports whether an item in this state counts toward the gallery:
// it is numbered, selectable and matched by duplicate checks.
func (s State) Live() bool {
	return s == StatePending || s == StateDisplayed
}

// CanTransition reports whether s -> to is a legal lifecycle step.
func (s State) CanTransition(to State) bool {
	switch s {
	case StatePending:
		return to == StateDisplayed || to == StateRemoving || to == StateRemoved
	case StateDisplayed:
		return to == StateRemoving
	case StateRemoving:
		return to == StateRemoved
	default:
		return false
	}
}

// Item is one image tile. Copies are handed out by the Gallery; mutating a
// copy has no effect on the gallery.
type Item struct {
	ID           int    `json:"id"`
	SourceURL    string `json:"url"`
	DisplayIndex int    `json:"index"` // 1-based among live items; 0 once removing
	State        State  `json:"state"`
	Selected     bool   `json:"selected"`
}

// Label returns the user-facing tile name ("Image 2").
func (it Item) Label() string {
	return fmt.Sprintf("Image %d", it.DisplayIndex)
}

// Snapshot is a read-only view of the gallery for renderers that do not run
// on the event loop (the HTTP control API).
type Snapshot struct {
	Items      []Item `json:"items"`
	Count      int    `json:"count"`
	SelectedID int    `json:"selectedId,omitempty"`
}

// Find returns the item with the given id from the snapshot.
func (s Snapshot) Find(id int) (Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
