package display

import (
	"strings"

	"github.com/tidyfile/tidyfile/internal/project"
)

// Tree renders the project's folder hierarchy with box-drawing glyphs.
func Tree(t *project.Tree) string {
	var b strings.Builder
	b.WriteString(t.Root + "\n")

	var tops []int
	for i, n := range t.Nodes {
		if n.Parent == -1 {
			tops = append(tops, i)
		}
	}
	for k, i := range tops {
		writeBranch(&b, t, i, "", k == len(tops)-1)
	}
	return b.String()
}

func writeBranch(b *strings.Builder, t *project.Tree, i int, prefix string, last bool) {
	glyph, childPrefix := "├── ", prefix+"│   "
	if last {
		glyph, childPrefix = "└── ", prefix+"    "
	}

	n := t.Nodes[i]
	label := n.Name
	if n.Number != "" {
		label = n.Number + " " + n.Name
	}
	b.WriteString(prefix + glyph + label + "\n")

	for k, c := range n.Children {
		writeBranch(b, t, c, childPrefix, k == len(n.Children)-1)
	}
}
