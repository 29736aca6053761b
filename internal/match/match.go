package match

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidyfile/tidyfile/internal/project"
	"github.com/tidyfile/tidyfile/internal/words"
)

// ErrUnknownNumber reports a folder code that resolves to no tree folder.
var ErrUnknownNumber = errors.New("unknown folder number")

// Match is one scored folder. Terms holds the folder terms that intersected
// the filename's expanded term set; Exact is true when at least one of them
// was an exact token rather than a synonym.
type Match struct {
	Folder int
	Terms  []string
	Exact  bool
	Score  int
}

// Matcher scores folders of one tree. A nil Thesaurus disables synonym
// expansion.
type Matcher struct {
	Tree      *project.Tree
	Thesaurus words.Thesaurus
}

// Match returns every usable folder whose term set intersects the filename
// tokens or forced terms, best first. Folders with no intersection are
// excluded entirely.
func (m *Matcher) Match(tokens, forced []string) []Match {
	exact := map[string]struct{}{}
	for _, w := range tokens {
		exact[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range forced {
		exact[strings.ToLower(w)] = struct{}{}
	}

	expanded := map[string]struct{}{}
	for _, w := range words.Expand(m.Thesaurus, append(append([]string(nil), tokens...), forced...)) {
		expanded[w] = struct{}{}
	}

	var out []Match
	for _, i := range m.Tree.Usable() {
		r := Match{Folder: i}
		seen := map[string]struct{}{}
		for _, term := range m.Tree.EffectiveTerms(i) {
			lt := strings.ToLower(term)
			if _, dup := seen[lt]; dup {
				continue
			}
			if _, ok := expanded[lt]; !ok {
				continue
			}
			seen[lt] = struct{}{}
			r.Terms = append(r.Terms, lt)
			r.Score++
			if _, ok := exact[lt]; ok {
				r.Exact = true
			}
		}
		if r.Score > 0 {
			sort.Strings(r.Terms)
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		if out[a].Exact != out[b].Exact {
			return out[a].Exact
		}
		na, nb := m.Tree.Nodes[out[a].Folder].Number, m.Tree.Nodes[out[b].Folder].Number
		if na != nb {
			return lessNumber(na, nb)
		}
		return m.Tree.Nodes[out[a].Folder].Path < m.Tree.Nodes[out[b].Folder].Path
	})
	return out
}

// ByNumber resolves an explicit folder code, bypassing scoring.
func (m *Matcher) ByNumber(number string) (Match, error) {
	i, ok := m.Tree.ByNumber(number)
	if !ok {
		return Match{}, fmt.Errorf("%w: %q", ErrUnknownNumber, number)
	}
	return Match{Folder: i, Exact: true, Score: 1}, nil
}

// lessNumber orders folder codes numerically: "9.02" before "11.01", and any
// numbered folder before an unnumbered one.
func lessNumber(a, b string) bool {
	if a == "" || b == "" {
		return a != ""
	}
	a1, a2 := splitCode(a)
	b1, b2 := splitCode(b)
	if a1 != b1 {
		return a1 < b1
	}
	return a2 < b2
}

func splitCode(code string) (int, int) {
	parts := strings.FieldsFunc(code, func(r rune) bool { return r == '.' || r == '-' })
	major, _ := strconv.Atoi(parts[0])
	minor := -1
	if len(parts) > 1 {
		minor, _ = strconv.Atoi(parts[1])
	}
	return major, minor
}
