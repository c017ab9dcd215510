// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/calendar"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/sidepanel/internal/presentation/tui/components/main"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/modal"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/option"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/title"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/toggle"
	weatherline "github.com/tesso57/sidepanel/internal/presentation/tui/components/weather"
)

// Props aggregates properties for all UI components.
type Props struct {
	Title    title.Props
	Weather  weatherline.Props
	Create   option.Props
	Calendar calendar.Props
	Options  []option.Props
	Toggle   toggle.Props
	Sidebar  sidebar.Props
	Main     mainview.Props
	Modal    modal.Props
	Footer   string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	p.Sidebar.Sections = SidebarSections(p)
	p.Sidebar.Toggle = toggle.Render(p.Toggle)

	return layout.Render(layout.Props{
		Sidebar: sidebar.Render(p.Sidebar),
		Main:    mainview.Render(p.Main),
		Footer:  p.Footer,
	})
}

// SidebarSections renders the sidebar body in order: title, the create row,
// the calendar, then the remaining rows.
func SidebarSections(p Props) []string {
	p.Title.Weather = weatherline.Render(p.Weather)

	sections := make([]string, 0, len(p.Options)+3)
	sections = append(sections,
		title.Render(p.Title),
		option.Render(p.Create),
		calendar.Render(p.Calendar),
	)
	for _, o := range p.Options {
		sections = append(sections, option.Render(o))
	}
	return sections
}
