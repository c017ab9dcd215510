package tui

import (
	"fmt"

	"github.com/tesso57/sidepanel/internal/domain/navigation"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/calendar"
	mainview "github.com/tesso57/sidepanel/internal/presentation/tui/components/main"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/modal"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/option"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/title"
	"github.com/tesso57/sidepanel/internal/presentation/tui/components/toggle"
	weatherline "github.com/tesso57/sidepanel/internal/presentation/tui/components/weather"
	"github.com/tesso57/sidepanel/internal/presentation/tui/state"
	"github.com/tesso57/sidepanel/internal/presentation/tui/view"
	"github.com/tesso57/sidepanel/internal/presentation/tui/zones"
)

const footerHeight = 1

func (m *Model) buildProps() view.Props {
	inner := sidebar.ContentWidth(m.state.SidebarWidth())
	return view.Props{
		Title:    m.buildTitleProps(inner),
		Weather:  m.buildWeatherProps(inner),
		Create:   m.buildOptionProps(0, inner),
		Calendar: m.buildCalendarProps(inner),
		Options:  m.buildMenuProps(inner),
		Toggle:   m.buildToggleProps(inner),
		Sidebar:  m.buildSidebarProps(),
		Main:     m.buildMainProps(),
		Modal:    m.buildModalProps(),
		Footer:   m.buildFooterProps(),
	}
}

func (m *Model) buildTitleProps(width int) title.Props {
	return title.Props{
		Open:  m.state.Sidebar.ShowTitle(),
		Now:   m.now(),
		Width: width,
		Theme: m.state.Theme,
	}
}

func (m *Model) buildWeatherProps(width int) weatherline.Props {
	text := ""
	if m.state.Weather.Mounted() {
		text = m.state.Weather.State.Text()
	}
	return weatherline.Props{
		Text:  text,
		Width: width,
		Theme: m.state.Theme,
	}
}

func (m *Model) buildOptionProps(idx, width int) option.Props {
	item, _ := m.state.Menu.At(idx)
	return option.Props{
		Icon:     item.Icon,
		Title:    item.Title,
		Notifs:   item.Notifs,
		Selected: m.state.Sidebar.Selected,
		Open:     m.state.Sidebar.Open,
		Focused:  m.state.Cursor == idx,
		Width:    width,
		ZoneID:   zones.Option(idx),
		Mark:     m.marker(),
		Theme:    m.state.Theme,
	}
}

func (m *Model) buildMenuProps(width int) []option.Props {
	props := make([]option.Props, 0, len(m.state.Menu.Items))
	for idx := 1; idx < m.state.Menu.Len(); idx++ {
		props = append(props, m.buildOptionProps(idx, width))
	}
	return props
}

func (m *Model) buildCalendarProps(width int) calendar.Props {
	return calendar.Props{
		Visible: m.state.Sidebar.ShowCalendar(),
		Now:     m.now(),
		Width:   width,
		Theme:   m.state.Theme,
	}
}

func (m *Model) buildToggleProps(width int) toggle.Props {
	return toggle.Props{
		Open:    m.state.Sidebar.Open,
		Focused: m.state.Cursor == m.state.ToggleRow(),
		Width:   width,
		Mark:    m.marker(),
		Theme:   m.state.Theme,
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	return sidebar.Props{
		Width:  m.state.SidebarWidth(),
		Height: m.bodyHeight(),
		Theme:  m.state.Theme,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	return mainview.Props{
		Width:  max(m.state.Width-m.state.SidebarWidth(), 0),
		Height: m.bodyHeight(),
		Header: m.state.Sidebar.Selected,
		Body:   sectionBody(m.state.Sidebar.Selected, m.state.Menu),
		Theme:  m.state.Theme,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if !m.state.Help.ShowAll {
		return modal.Props{Visible: false}
	}
	return modal.Props{
		Visible: true,
		Title:   "Keys",
		Body:    m.state.Help.View(&m.state.Keys),
		Width:   m.state.Width,
		Height:  m.state.Height,
		Theme:   m.state.Theme,
	}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Sidebar, m.state.Menu, helpText)
}

func (m *Model) bodyHeight() int {
	return max(m.state.Height-footerHeight, 0)
}

func (m *Model) marker() zones.Marker {
	if m.deps.Zones == nil {
		return nil
	}
	return m.deps.Zones.Mark
}

func sectionBody(selected string, menu navigation.Menu) string {
	idx := menu.IndexOf(selected)
	if idx < 0 {
		return "Pick a section from the sidebar."
	}
	item, _ := menu.At(idx)
	if item.Notifs > 0 {
		return fmt.Sprintf("%s %s has %d new notifications.", item.Icon, item.Title, item.Notifs)
	}
	return fmt.Sprintf("%s %s", item.Icon, item.Title)
}
