// Package gallery holds the image gallery state: the ordered items, the
// single selection and the id counter, plus the transitions that mutate them.
//
// Gallery has no rendering or timing of its own. Callers (the terminal UI)
// apply user intents, render the resulting items, and feed back load results
// and delayed removals. All methods must be called from one goroutine.
package gallery

import (
	"fmt"
	"strings"
)

// Gallery is the gallery controller.
type Gallery struct {
	items     []*item // physical order; includes items still being removed
	selected  int     // id of the selected item, 0 when none
	counter   int     // last id handed out; never decremented
	validator *Validator
}

// item is the gallery's private, mutable record behind an Item copy.
type item struct {
	id           int
	sourceURL    string
	displayIndex int
	state        State
}

// New creates an empty gallery. A nil validator uses DefaultValidator.
func New(v *Validator) *Gallery {
	if v == nil {
		v = DefaultValidator()
	}
	return &Gallery{validator: v}
}

// Validator returns the URL validator used by Add.
func (g *Gallery) Validator() *Validator {
	return g.validator
}

// Add validates rawURL and appends a Pending item for it.
// On a *ValidationError the gallery is unchanged.
func (g *Gallery) Add(rawURL string) (Item, error) {
	url, err := g.validator.Validate(rawURL)
	if err != nil {
		return Item{}, err
	}
	g.counter++
	it := &item{id: g.counter, sourceURL: url, state: StatePending}
	g.items = append(g.items, it)
	g.renumber()
	return g.copyOf(it), nil
}

// Select toggles the selection: selecting the selected item clears it,
// selecting any other live item moves the selection there.
func (g *Gallery) Select(id int) error {
	if g.live(id) == nil {
		return fmt.Errorf("select %d: %w", id, ErrUnknownItem)
	}
	if g.selected == id {
		g.selected = 0
	} else {
		g.selected = id
	}
	return nil
}

// DeleteSelected logically deletes the selected item: it moves to
// StateRemoving, loses its number and the selection is cleared. The item
// stays physically present until Finalize. Returns false when nothing is
// selected.
func (g *Gallery) DeleteSelected() (Item, bool) {
	it := g.live(g.selected)
	g.selected = 0
	if it == nil {
		return Item{}, false
	}
	if err := g.transition(it, StateRemoving); err != nil {
		return Item{}, false
	}
	g.renumber()
	return g.copyOf(it), true
}

// ClearAll logically deletes every live item when confirmed is true.
// It is a no-op on an empty gallery or without confirmation. The returned
// items are in StateRemoving and must be finalized by the caller.
func (g *Gallery) ClearAll(confirmed bool) []Item {
	if !confirmed || g.Len() == 0 {
		return nil
	}
	var removed []Item
	for _, it := range g.items {
		if !it.state.Live() {
			continue
		}
		if err := g.transition(it, StateRemoving); err != nil {
			continue
		}
		removed = append(removed, g.copyOf(it))
	}
	g.selected = 0
	g.renumber()
	return removed
}

// Seed adds each URL that no live item already shows, in input order.
// Present URLs are skipped silently; invalid ones are collected in errs.
func (g *Gallery) Seed(urls []string) (added []Item, errs []error) {
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if g.Contains(u) {
			continue
		}
		it, err := g.Add(u)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		added = append(added, it)
	}
	return added, errs
}

// LoadSucceeded marks a Pending item Displayed. Results for items that are
// no longer pending (removed, removing, already displayed) are ignored.
func (g *Gallery) LoadSucceeded(id int) (Item, bool) {
	it := g.find(id)
	if it == nil || it.state != StatePending {
		return Item{}, false
	}
	if err := g.transition(it, StateDisplayed); err != nil {
		return Item{}, false
	}
	return g.copyOf(it), true
}

// LoadFailed removes a Pending item whose image could not be loaded and
// returns the error to report. Late results for items that are already gone
// or being removed are ignored.
func (g *Gallery) LoadFailed(id int, cause error) (*LoadError, bool) {
	it := g.find(id)
	if it == nil || it.state != StatePending {
		return nil, false
	}
	if err := g.transition(it, StateRemoved); err != nil {
		return nil, false
	}
	if g.selected == id {
		g.selected = 0
	}
	g.drop(id)
	g.renumber()
	return &LoadError{ItemID: id, URL: it.sourceURL, Err: cause}, true
}

// Finalize physically removes an item that was logically deleted.
// It returns false if the item is not in StateRemoving.
func (g *Gallery) Finalize(id int) bool {
	it := g.find(id)
	if it == nil || it.state != StateRemoving {
		return false
	}
	if err := g.transition(it, StateRemoved); err != nil {
		return false
	}
	g.drop(id)
	return true
}

// Items returns copies of the live items in display order.
func (g *Gallery) Items() []Item {
	out := make([]Item, 0, len(g.items))
	for _, it := range g.items {
		if it.state.Live() {
			out = append(out, g.copyOf(it))
		}
	}
	return out
}

// All returns copies of every physically present item, including those
// still being removed, in physical order.
func (g *Gallery) All() []Item {
	out := make([]Item, len(g.items))
	for i, it := range g.items {
		out[i] = g.copyOf(it)
	}
	return out
}

// Removing returns the items awaiting Finalize.
func (g *Gallery) Removing() []Item {
	var out []Item
	for _, it := range g.items {
		if it.state == StateRemoving {
			out = append(out, g.copyOf(it))
		}
	}
	return out
}

// Item returns the physically present item with the given id.
func (g *Gallery) Item(id int) (Item, bool) {
	it := g.find(id)
	if it == nil {
		return Item{}, false
	}
	return g.copyOf(it), true
}

// Len is the number of live items.
func (g *Gallery) Len() int {
	n := 0
	for _, it := range g.items {
		if it.state.Live() {
			n++
		}
	}
	return n
}

// Empty reports whether no live items remain.
func (g *Gallery) Empty() bool {
	return g.Len() == 0
}

// Selected returns the selected item, if any.
func (g *Gallery) Selected() (Item, bool) {
	it := g.live(g.selected)
	if it == nil {
		return Item{}, false
	}
	return g.copyOf(it), true
}

// Contains reports whether a live item has exactly this source URL.
func (g *Gallery) Contains(url string) bool {
	for _, it := range g.items {
		if it.state.Live() && it.sourceURL == url {
			return true
		}
	}
	return false
}

// Snapshot captures the live items and selection.
func (g *Gallery) Snapshot() Snapshot {
	items := g.Items()
	return Snapshot{Items: items, Count: len(items), SelectedID: g.selected}
}

// renumber assigns 1..N to live items in order and 0 to the rest.
func (g *Gallery) renumber() {
	n := 0
	for _, it := range g.items {
		if it.state.Live() {
			n++
			it.displayIndex = n
		} else {
			it.displayIndex = 0
		}
	}
}

func (g *Gallery) transition(it *item, to State) error {
	if !it.state.CanTransition(to) {
		return fmt.Errorf("item %d %s -> %s: %w", it.id, it.state, to, ErrInvalidTransition)
	}
	it.state = to
	return nil
}

func (g *Gallery) find(id int) *item {
	if id == 0 {
		return nil
	}
	for _, it := range g.items {
		if it.id == id {
			return it
		}
	}
	return nil
}

func (g *Gallery) live(id int) *item {
	it := g.find(id)
	if it == nil || !it.state.Live() {
		return nil
	}
	return it
}

func (g *Gallery) drop(id int) {
	for i, it := range g.items {
		if it.id == id {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return
		}
	}
}

func (g *Gallery) copyOf(it *item) Item {
	return Item{
		ID:           it.id,
		SourceURL:    it.sourceURL,
		DisplayIndex: it.displayIndex,
		State:        it.state,
		Selected:     it.id == g.selected && it.state.Live(),
	}
}
