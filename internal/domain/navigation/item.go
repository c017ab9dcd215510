// Package navigation defines the sidebar menu and its view state.
package navigation

// Item is one selectable row of the sidebar.
type Item struct {
	Title  string
	Icon   string
	Notifs int
}

// Menu is the configured set of sidebar rows.
// Create is always rendered first, above the calendar.
type Menu struct {
	Create Item
	Items  []Item
}

// DefaultMenu returns the built-in sidebar menu.
func DefaultMenu() Menu {
	return Menu{
		Create: Item{Title: "Create", Icon: "+"},
		Items: []Item{
			{Title: "Sales", Icon: "$", Notifs: 3},
			{Title: "View Site", Icon: "▭"},
			{Title: "Products", Icon: "⊞"},
			{Title: "Tags", Icon: "#"},
			{Title: "Analytics", Icon: "▤"},
			{Title: "Members", Icon: "☺"},
		},
	}
}

// All returns every row in render order.
func (m Menu) All() []Item {
	out := make([]Item, 0, len(m.Items)+1)
	out = append(out, m.Create)
	return append(out, m.Items...)
}

// Len returns the number of rows, Create included.
func (m Menu) Len() int {
	return len(m.Items) + 1
}

// At returns the row at index i in render order.
func (m Menu) At(i int) (Item, bool) {
	if i < 0 || i >= m.Len() {
		return Item{}, false
	}
	if i == 0 {
		return m.Create, true
	}
	return m.Items[i-1], true
}

// IndexOf returns the render index of the row with the given title, or -1.
func (m Menu) IndexOf(title string) int {
	for i, item := range m.All() {
		if item.Title == title {
			return i
		}
	}
	return -1
}

// Contains reports whether title names a configured row.
func (m Menu) Contains(title string) bool {
	return m.IndexOf(title) >= 0
}
