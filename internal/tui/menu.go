package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// menuItem is one entry of the main menu. A zero target quits.
type menuItem struct {
	label  string
	hint   string
	target viewID
}

var menuItems = []menuItem{
	{"Generate user", "email, password, name and avatar", viewUser},
	{"Generate layover", "random airport, five day stay", viewLayover},
	{"Browse airports", "search the code table", viewAirports},
	{"Quit", "", viewMenu},
}

type menuModel struct {
	cursor  int
	version string
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

func newMenuModel(version string) menuModel {
	return menuModel{version: version}
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, zstyle.KeyQuit):
		return m, tea.Quit
	case key.Matches(km, zstyle.KeyUp):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(km, zstyle.KeyDown):
		m.cursor = min(m.cursor+1, len(menuItems)-1)
	case key.Matches(km, zstyle.KeyEnter):
		return m, menuItems[m.cursor].cmd()
	default:
		// 1-9 jump straight to an entry
		if s := km.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(menuItems) {
			m.cursor = int(s[0] - '1')
			return m, menuItems[m.cursor].cmd()
		}
	}

	return m, nil
}

func (it menuItem) cmd() tea.Cmd {
	if it.target == viewMenu {
		return tea.Quit
	}
	target := it.target
	return func() tea.Msg { return navigateMsg{view: target} }
}

func (m menuModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n  %s %s\n\n", zstyle.Title.Render("zfixture"), zstyle.MutedText.Render(m.version))

	for i, it := range menuItems {
		line := fmt.Sprintf("%d  %-18s", i+1, it.label)
		if m.cursor == i {
			b.WriteString(zstyle.Highlight.Render("  > "+line) + " " + zstyle.MutedText.Render(it.hint) + "\n")
			continue
		}
		b.WriteString("    " + line + "\n")
	}

	b.WriteString("\n  " + zstyle.MutedText.Render("j/k navigate  1-4 pick  enter select  q quit") + "\n\n")
	return b.String()
}
