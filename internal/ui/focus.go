package ui

// FocusManager tracks and rotates focus across the app's focus targets.
type FocusManager struct {
	Current  AppMode   // currently focused target
	Order    []AppMode // tab order for focus rotation
	OnChange func(from, to AppMode)
}

// NewFocusManager starts with focus on the first target in order.
func NewFocusManager(order ...AppMode) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next target in order.
// Returns the new current focus.
func (f *FocusManager) Next() AppMode {
	return f.step(1)
}

// Prev moves focus to the previous target in order.
func (f *FocusManager) Prev() AppMode {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) AppMode {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := 0
	for i, m := range f.Order {
		if m == f.Current {
			idx = i
			break
		}
	}
	next := (idx + delta + len(f.Order)) % len(f.Order)
	f.set(f.Order[next])
	return f.Current
}

// SetFocus sets focus to mode. Returns false if mode is not in Order.
func (f *FocusManager) SetFocus(mode AppMode) bool {
	for _, m := range f.Order {
		if m == mode {
			f.set(mode)
			return true
		}
	}
	return false
}

// Is reports whether mode has focus.
func (f *FocusManager) Is(mode AppMode) bool {
	return f.Current == mode
}

func (f *FocusManager) set(to AppMode) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
