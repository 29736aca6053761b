package display

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidyfile/tidyfile/internal/config"
	"github.com/tidyfile/tidyfile/internal/project"
)

func TestDiffUnchanged(t *testing.T) {
	assert.Equal(t, "notes.txt", Diff("notes.txt", "notes.txt"))
}

func TestDiffKeepsCommonEnds(t *testing.T) {
	got := Diff("meeting notes.TXT", "meeting notes.txt")
	assert.Contains(t, got, "meeting notes.")
	assert.Contains(t, got, "TXT")
	assert.Contains(t, got, "txt")
}

func TestDiffWholeRename(t *testing.T) {
	got := Diff("a.pdf", "b.pdf")
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "b")
	assert.Contains(t, got, ".pdf")
}

func TestTable(t *testing.T) {
	out := Table(
		[]string{"Original", "New"},
		[][]string{{"a.txt", "b.txt"}},
	)
	assert.Contains(t, out, "Original")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.txt")
}

func TestTree(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{
		"10-19 Admin/11 Meetings/11.01 Meetings",
		"10-19 Admin/12 Taxes",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	tree, err := project.Build(&config.Project{Name: "docs", Path: root, Kind: config.KindJohnnyDecimal})
	require.NoError(t, err)

	out := Tree(tree)
	assert.Contains(t, out, root)
	assert.Contains(t, out, "10-19 Admin")
	assert.Contains(t, out, "└── 11.01 Meetings")
	assert.Contains(t, out, "12 Taxes")
}
