package tui

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfixture/internal/fixture"
)

// fixtureField is a labeled value shown and copied one at a time.
type fixtureField struct {
	label string
	value string
}

// fixtureModel displays one generated record with copy actions.
type fixtureModel struct {
	kind   viewID
	title  string
	record any
	fields []fixtureField
	err    error
	cursor int
	flash  string
}

// regenerateMsg asks the root for a fresh record of the given kind.
type regenerateMsg struct {
	view viewID
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

// copyFunc is swapped out in tests.
var copyFunc = copyToClipboard

func newFixtureModel(kind viewID, title string, record any, fields []fixtureField, err error) fixtureModel {
	return fixtureModel{
		kind:   kind,
		title:  title,
		record: record,
		fields: fields,
		err:    err,
	}
}

func userFields(u fixture.User) []fixtureField {
	return []fixtureField{
		{"email", u.Email},
		{"password", u.Password},
		{"first name", u.FirstName},
		{"picture", u.ProfilePicture},
	}
}

func layoverFields(l fixture.Layover) []fixtureField {
	return []fixtureField{
		{"iata code", l.IATACode},
		{"depart", l.Depart.Format(time.RFC3339)},
		{"arrive", l.Arrive.Format(time.RFC3339)},
	}
}

func (m fixtureModel) Update(msg tea.Msg) (fixtureModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m fixtureModel) handleKey(msg tea.KeyMsg) (fixtureModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if msg.String() == "n" {
		kind := m.kind
		return m, func() tea.Msg { return regenerateMsg{view: kind} }
	}

	if len(m.fields) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.copy(m.fields[m.cursor].value, "copied!")
	}

	if msg.String() == "c" {
		data, err := json.Marshal(m.record)
		if err != nil {
			return m.setFlash("encode: " + err.Error()), clearFlashAfter()
		}
		return m.copy(string(data), "copied json!")
	}

	return m, nil
}

func (m fixtureModel) copy(text, ok string) (fixtureModel, tea.Cmd) {
	if err := copyFunc(text); err != nil {
		return m.setFlash("copy: " + err.Error()), clearFlashAfter()
	}
	return m.setFlash(ok), clearFlashAfter()
}

func (m fixtureModel) setFlash(msg string) fixtureModel {
	m.flash = msg
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m fixtureModel) View() string {
	title := zstyle.Title.Render(m.title)
	s := fmt.Sprintf("\n  %s\n\n", title)

	if m.err != nil {
		s += "  " + zstyle.StatusErr.Render(m.err.Error()) + "\n\n\n"
		return s
	}

	for i, f := range m.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-11s", f.label))
		if i == m.cursor {
			s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, f.value)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", label, f.value)
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
