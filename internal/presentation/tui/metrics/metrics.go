// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	// IconColumnWidth is the cell holding the focus marker and the row icon.
	IconColumnWidth      = 3
	SidebarPaddingX      = 1
	SidebarBorderWidth   = 1
	DefaultExpandedWidth = 32

	// CollapsedWidth fits the icon column only.
	CollapsedWidth = IconColumnWidth + 2*SidebarPaddingX + SidebarBorderWidth

	// MinExpandedWidth keeps room for the calendar grid.
	MinExpandedWidth = 24

	MainPaddingLeft = 2
)
