package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfixture/internal/airport"
)

// airportPageSize is how many rows the list shows at once.
const airportPageSize = 12

// airportListModel is a searchable list over the airport table.
type airportListModel struct {
	table     airport.Table
	shown     []airport.Airport
	cursor    int
	offset    int
	search    textinput.Model
	searching bool
}

// layoverAtMsg asks the root for a layover pinned to one airport.
type layoverAtMsg struct {
	airport airport.Airport
}

func newAirportListModel(table airport.Table) airportListModel {
	ti := textinput.New()
	ti.Placeholder = "name, code or city"
	ti.CharLimit = 64
	ti.Width = 40

	return airportListModel{
		table:  table,
		shown:  table.Airports(),
		search: ti,
	}
}

func (m airportListModel) Init() tea.Cmd {
	return nil
}

func (m airportListModel) Update(msg tea.Msg) (airportListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(keyMsg)
	}
	return m.handleKey(keyMsg)
}

func (m airportListModel) handleSearchKey(msg tea.KeyMsg) (airportListModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m.filter(), nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m.filter(), cmd
}

func (m airportListModel) handleKey(msg tea.KeyMsg) (airportListModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if msg.String() == "/" {
		m.searching = true
		return m, m.search.Focus()
	}

	if len(m.shown) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m.scroll(), nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.shown)-1 {
			m.cursor++
		}
		return m.scroll(), nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		a := m.shown[m.cursor]
		return m, func() tea.Msg { return layoverAtMsg{airport: a} }
	}

	return m, nil
}

// filter recomputes the visible rows from the search text.
func (m airportListModel) filter() airportListModel {
	if q := m.search.Value(); q != "" {
		m.shown = m.table.Search(q, 0)
	} else {
		m.shown = m.table.Airports()
	}
	m.cursor = 0
	m.offset = 0
	return m
}

// scroll keeps the cursor inside the visible page.
func (m airportListModel) scroll() airportListModel {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+airportPageSize {
		m.offset = m.cursor - airportPageSize + 1
	}
	return m
}

func (m airportListModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	s := "\n"
	if m.searching || m.search.Value() != "" {
		s += "  " + m.search.View() + "\n\n"
	}

	if len(m.shown) == 0 {
		s += "  " + zstyle.MutedText.Render("no matching airports") + "\n\n"
		return s
	}

	end := min(m.offset+airportPageSize, len(m.shown))
	for i := m.offset; i < end; i++ {
		a := m.shown[i]
		line := fmt.Sprintf("%-4s %-40s %s", a.Code, truncate(a.Name, 40), zstyle.MutedText.Render(a.City))
		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n  " + zstyle.MutedText.Render(fmt.Sprintf("%d of %d", len(m.shown), m.table.Len())) + "\n"
	return s
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
