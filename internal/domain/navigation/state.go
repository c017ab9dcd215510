package navigation

import "strings"

// DefaultSelected is the selection a freshly mounted sidebar starts with.
// It does not name a menu row, so nothing is highlighted until the user picks one.
const DefaultSelected = "Dashboard"

// State is the sidebar's transient view state.
// Values are immutable: Select and Toggle return updated copies.
type State struct {
	Open     bool
	Selected string
}

// NewState returns the initial state: open, with selected defaulting to DefaultSelected.
func NewState(selected string) State {
	selected = strings.TrimSpace(selected)
	if selected == "" {
		selected = DefaultSelected
	}
	return State{Open: true, Selected: selected}
}

// Select returns the state with title selected.
func (s State) Select(title string) State {
	s.Selected = title
	return s
}

// Toggle returns the state with the open flag flipped.
func (s State) Toggle() State {
	s.Open = !s.Open
	return s
}

// IsSelected reports whether the row titled title is the active one.
func (s State) IsSelected(title string) bool {
	return s.Selected == title
}

// ShowLabel reports whether row labels are rendered.
func (s State) ShowLabel() bool {
	return s.Open
}

// ShowBadge reports whether a notification badge with the given count is rendered.
// Zero and negative counts never render.
func (s State) ShowBadge(notifs int) bool {
	return s.Open && notifs > 0
}

// ShowCalendar reports whether the inline calendar is rendered.
func (s State) ShowCalendar() bool {
	return s.Open
}

// ShowTitle reports whether the greeting and the weather line are rendered.
// The weather line is mounted exactly while this holds.
func (s State) ShowTitle() bool {
	return s.Open
}

// ShowHideLabel reports whether the toggle renders its "Hide" label.
func (s State) ShowHideLabel() bool {
	return s.Open
}
