package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/tidyfile/tidyfile/internal/config"
)

// MarkerFile is the per-folder file listing extra matching terms, one per
// line. Lines starting with "#" are comments. The file is read at build time
// and never written.
const MarkerFile = ".tidyfile"

// Level is a folder's position in the Johnny Decimal hierarchy.
type Level int

const (
	LevelPlain    Level = iota // Plain directory in a folder-kind project.
	LevelCategory              // NN-NN top level.
	LevelArea                  // NN second level.
	LevelID                    // NN.NN filing level.
)

var (
	reCategory = regexp.MustCompile(`^(\d{2}-\d{2})[- _]`)
	reArea     = regexp.MustCompile(`^(\d{2})[- _]`)
	reID       = regexp.MustCompile(`^(\d{2}\.\d{2})[- _]`)
	reNameSep  = regexp.MustCompile(`[- _]+`)
)

// Folder is one directory in the tree. Parent is an index into Tree.Nodes,
// -1 at the top level.
type Folder struct {
	Path     string
	Name     string // Display name with the number prefix stripped.
	Number   string // "11-20", "11", "11.04"; empty for plain folders.
	Level    Level
	Parent   int
	Children []int
	Terms    []string // Own-name words plus marker-file terms.
}

// Tree is the immutable folder snapshot for one project.
type Tree struct {
	Root  string
	Kind  config.ProjectKind
	Nodes []Folder

	usable   []int
	byNumber map[string]int
}

// Build walks the project root and snapshots its folder structure. For
// Johnny Decimal projects only correctly numbered folders are considered;
// for folder projects every non-hidden directory up to the configured depth
// is a target.
func Build(p *config.Project) (*Tree, error) {
	t := &Tree{Root: p.Path, Kind: p.Kind, byNumber: map[string]int{}}

	var err error
	if p.Kind == config.KindJohnnyDecimal {
		err = t.walkJD()
	} else {
		err = t.walkPlain(p.Path, -1, p.Depth)
	}
	if err != nil {
		return nil, err
	}

	for i := range t.Nodes {
		if t.isUsable(i) {
			t.usable = append(t.usable, i)
		}
		if n := t.Nodes[i].Number; n != "" {
			t.byNumber[n] = i
		}
	}
	return t, nil
}

func (t *Tree) walkJD() error {
	cats, err := subdirs(t.Root)
	if err != nil {
		return fmt.Errorf("cannot read project root: %w", err)
	}
	for _, cat := range cats {
		ci, ok := t.addNode(filepath.Join(t.Root, cat), cat, LevelCategory, -1)
		if !ok {
			continue
		}
		areas, err := subdirs(t.Nodes[ci].Path)
		if err != nil {
			return err
		}
		for _, area := range areas {
			ai, ok := t.addNode(filepath.Join(t.Nodes[ci].Path, area), area, LevelArea, ci)
			if !ok {
				continue
			}
			ids, err := subdirs(t.Nodes[ai].Path)
			if err != nil {
				return err
			}
			for _, id := range ids {
				t.addNode(filepath.Join(t.Nodes[ai].Path, id), id, LevelID, ai)
			}
		}
	}
	return nil
}

func (t *Tree) walkPlain(dir string, parent, depthLeft int) error {
	if depthLeft <= 0 {
		return nil
	}
	names, err := subdirs(dir)
	if err != nil {
		if parent == -1 {
			return fmt.Errorf("cannot read project root: %w", err)
		}
		return err
	}
	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}
		i, _ := t.addNode(filepath.Join(dir, name), name, LevelPlain, parent)
		if err := t.walkPlain(t.Nodes[i].Path, i, depthLeft-1); err != nil {
			return err
		}
	}
	return nil
}

// addNode appends a folder node. For numbered levels the name must carry the
// right prefix; folders that don't are skipped.
func (t *Tree) addNode(path, base string, level Level, parent int) (int, bool) {
	var number, name string
	switch level {
	case LevelCategory:
		m := reCategory.FindStringSubmatch(base)
		if m == nil {
			return -1, false
		}
		number, name = m[1], strings.TrimSpace(base[len(m[0]):])
	case LevelArea:
		m := reArea.FindStringSubmatch(base)
		if m == nil || reCategory.MatchString(base) {
			return -1, false
		}
		number, name = m[1], strings.TrimSpace(base[len(m[0]):])
	case LevelID:
		m := reID.FindStringSubmatch(base)
		if m == nil {
			return -1, false
		}
		number, name = m[1], strings.TrimSpace(base[len(m[0]):])
	default:
		name = base
	}

	f := Folder{
		Path:   path,
		Name:   name,
		Number: number,
		Level:  level,
		Parent: parent,
		Terms:  folderTerms(path, name),
	}
	t.Nodes = append(t.Nodes, f)
	i := len(t.Nodes) - 1
	if parent >= 0 {
		t.Nodes[parent].Children = append(t.Nodes[parent].Children, i)
	}
	return i, true
}

// folderTerms splits the display name into words and merges in the marker
// file's terms, if one exists.
func folderTerms(path, name string) []string {
	var terms []string
	for _, w := range reNameSep.Split(name, -1) {
		if w != "" {
			terms = append(terms, w)
		}
	}
	data, err := os.ReadFile(filepath.Join(path, MarkerFile))
	if err != nil {
		return terms
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms
}

// isUsable reports whether a folder is a filing target: leaves always are,
// and a non-leaf qualifies when it carries a marker file.
func (t *Tree) isUsable(i int) bool {
	if t.Kind == config.KindFolder {
		return true
	}
	if len(t.Nodes[i].Children) == 0 {
		return true
	}
	_, err := os.Stat(filepath.Join(t.Nodes[i].Path, MarkerFile))
	return err == nil
}

// Usable returns the filing-target indices sorted by path.
func (t *Tree) Usable() []int {
	out := append([]int(nil), t.usable...)
	sort.Slice(out, func(a, b int) bool {
		return t.Nodes[out[a]].Path < t.Nodes[out[b]].Path
	})
	return out
}

// ByNumber resolves a Johnny Decimal code to its folder index.
func (t *Tree) ByNumber(number string) (int, bool) {
	i, ok := t.byNumber[number]
	return i, ok
}

// EffectiveTerms returns a folder's own terms plus the name words of its
// ancestors, so a file matching a category name can still land in one of its
// id folders.
func (t *Tree) EffectiveTerms(i int) []string {
	terms := append([]string(nil), t.Nodes[i].Terms...)
	for p := t.Nodes[i].Parent; p >= 0; p = t.Nodes[p].Parent {
		for _, w := range reNameSep.Split(t.Nodes[p].Name, -1) {
			if w != "" {
				terms = append(terms, w)
			}
		}
	}
	return terms
}

// RelPath returns the folder path relative to the project root, for display.
func (t *Tree) RelPath(i int) string {
	rel, err := filepath.Rel(t.Root, t.Nodes[i].Path)
	if err != nil {
		return t.Nodes[i].Path
	}
	return rel
}

func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}
