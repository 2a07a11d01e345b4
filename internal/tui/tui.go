// Package tui implements the preview browser for zfixture: generate single
// fixtures, inspect their fields and copy them out.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfixture/internal/airport"
	"github.com/zarlcorp/zfixture/internal/fixture"
)

type viewID int

const (
	viewMenu viewID = iota
	viewUser
	viewLayover
	viewAirports
)

// Model is the root TUI model.
type Model struct {
	version  string
	users    *fixture.UserGenerator
	layovers *fixture.LayoverGenerator
	table    airport.Table

	// layovers are drawn from pinned when set, otherwise from table
	pinned *airport.Table

	active   viewID
	menu     menuModel
	user     fixtureModel
	layover  fixtureModel
	airports airportListModel

	width int
}

// New creates the root TUI model.
func New(version string, users *fixture.UserGenerator, layovers *fixture.LayoverGenerator, table airport.Table) Model {
	return Model{
		version:  version,
		users:    users,
		layovers: layovers,
		table:    table,
		active:   viewMenu,
		menu:     newMenuModel(version),
		airports: newAirportListModel(table),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case regenerateMsg:
		return m.regenerate(msg.view)

	case layoverAtMsg:
		pinned := airport.NewTable([]airport.Airport{msg.airport})
		m.pinned = &pinned
		m.layover = m.newLayover()
		m.active = viewLayover
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewUser:
		m.user = m.newUser()
	case viewLayover:
		m.pinned = nil
		m.layover = m.newLayover()
	case viewAirports:
		m.airports = newAirportListModel(m.table)
		m.active = view
		return m, m.airports.Init()
	}
	m.active = view
	return m, nil
}

func (m Model) regenerate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewUser:
		m.user = m.newUser()
	case viewLayover:
		m.layover = m.newLayover()
	}
	return m, nil
}

func (m Model) newUser() fixtureModel {
	u := m.users.One()
	return newFixtureModel(viewUser, "generated user", u, userFields(u), nil)
}

func (m Model) newLayover() fixtureModel {
	table := m.table
	if m.pinned != nil {
		table = *m.pinned
	}

	l, err := m.layovers.One(table)
	if err != nil {
		return newFixtureModel(viewLayover, "generated layover", nil, nil, err)
	}

	fields := layoverFields(l)
	if a, err := table.Lookup(l.IATACode); err == nil {
		fields = append(fields, fixtureField{"airport", a.Name})
	}
	return newFixtureModel(viewLayover, "generated layover", l, fields, nil)
}

func (m Model) View() string {
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewUser:
		content = m.user.View()
	case viewLayover:
		content = m.layover.View()
	case viewAirports:
		content = m.airports.View()
	}

	header := zstyle.RenderHeader("zfixture", viewTitle(m.active), zstyle.ZburnAccent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewUser:
		return "User Fixture"
	case viewLayover:
		return "Layover Fixture"
	case viewAirports:
		return "Airports"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewUser, viewLayover:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy json"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewAirports:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "/", Desc: "search"},
			{Key: "enter", Desc: "layover here"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewUser:
		m.user, cmd = m.user.Update(msg)
	case viewLayover:
		m.layover, cmd = m.layover.Update(msg)
	case viewAirports:
		m.airports, cmd = m.airports.Update(msg)
	}

	return m, cmd
}
