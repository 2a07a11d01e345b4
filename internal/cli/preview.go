package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/zfixture/internal/fixture"
	"github.com/zarlcorp/zfixture/internal/tui"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Preview when stdout is not a terminal.
var ErrNotTerminal = errors.New("preview needs a terminal")

// Preview opens the interactive fixture browser. Flags: --seed S.
func Preview(env Env, version string, args []string) error {
	if !isTerminal(env.Stdout) {
		return ErrNotTerminal
	}

	seed, err := intFlag(args, "--seed", 0)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	table, err := env.Airports()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	f := fixture.NewFaker(int64(seed))
	m := tui.New(version, fixture.NewUserGenerator(f), fixture.NewLayoverGenerator(f), table)
	if _, err := tea.NewProgram(m, tea.WithOutput(env.Stdout)).Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// CmdPreview runs Preview and exits on failure.
func CmdPreview(env Env, version string, args []string) {
	exitOnErr(Preview(env, version, args))
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
