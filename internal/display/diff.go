package display

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	styleDeleted  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Reverse(true)
	styleInserted = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Reverse(true)
)

// Diff highlights what changed between the old and new filename: the common
// prefix and suffix stay plain, the removed middle renders red, the inserted
// middle green.
func Diff(oldName, newName string) string {
	if oldName == newName {
		return oldName
	}
	o, n := []rune(oldName), []rune(newName)

	p := 0
	for p < len(o) && p < len(n) && o[p] == n[p] {
		p++
	}
	s := 0
	for s < len(o)-p && s < len(n)-p && o[len(o)-1-s] == n[len(n)-1-s] {
		s++
	}

	out := string(o[:p])
	if del := string(o[p : len(o)-s]); del != "" {
		out += styleDeleted.Render(del)
	}
	if ins := string(n[p : len(n)-s]); ins != "" {
		out += styleInserted.Render(ins)
	}
	return out + string(o[len(o)-s:])
}
