// Package prompt implements the interactive folder picker shown when a file
// matches more than one destination.
package prompt

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Choice is one selectable destination folder.
type Choice struct {
	Label string // Folder path relative to the project root.
	Terms string // The terms that matched, for context.
	Value int    // Folder index in the project tree.
}

var (
	styleTitle    = lipgloss.NewStyle().Bold(true)
	styleCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleTerms    = lipgloss.NewStyle().Faint(true)
)

type model struct {
	filename string
	choices  []Choice
	cursor   int
	done     bool
	skipped  bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices) {
			m.cursor++
		}
	case "enter":
		m.done = true
		m.skipped = m.cursor == len(m.choices)
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.done = true
		m.skipped = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	s := styleTitle.Render(fmt.Sprintf("Multiple folders match %q:", m.filename)) + "\n\n"
	for i, c := range m.choices {
		s += m.row(i, c.Label)
		if c.Terms != "" {
			s += "  " + styleTerms.Render("("+c.Terms+")")
		}
		s += "\n"
	}
	s += m.row(len(m.choices), "Skip this file") + "\n"
	return s
}

func (m model) row(i int, label string) string {
	if i == m.cursor {
		return styleCursor.Render("> ") + styleSelected.Render(label)
	}
	return "  " + label
}

// SelectFolder presents the choices and returns the chosen folder index.
// ok is false when the user skipped or the session is not interactive.
func SelectFolder(filename string, choices []Choice) (int, bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return 0, false, fmt.Errorf("cannot prompt: stdin is not a terminal")
	}
	p := tea.NewProgram(model{filename: filename, choices: choices})
	final, err := p.Run()
	if err != nil {
		return 0, false, err
	}
	m := final.(model)
	if m.skipped {
		return 0, false, nil
	}
	return m.choices[m.cursor].Value, true, nil
}
