package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"sort"
	"strings"
	"sync"
)

// Thesaurus is the narrow lookup capability the matcher depends on. The
// returned slice never contains the queried word itself.
type Thesaurus interface {
	Synonyms(word string) []string
}

//go:embed thesaurus.tsv
var corpusData []byte

// Corpus is the bundled thesaurus. The data file is parsed on first lookup
// only, so cleaning-only runs never pay for it.
type Corpus struct {
	once sync.Once
	sets map[string][]string
}

// DefaultCorpus returns the thesaurus embedded in the binary.
func DefaultCorpus() *Corpus {
	return &Corpus{}
}

// Synonyms returns the lexical synonyms of word, lower-cased and sorted.
func (c *Corpus) Synonyms(word string) []string {
	c.once.Do(c.parse)
	return c.sets[strings.ToLower(word)]
}

// parse reads the tab-separated corpus: one synonym set per line, comments
// start with '#'. Every word in a set maps to all the others.
func (c *Corpus) parse() {
	c.sets = map[string][]string{}
	merged := map[string]map[string]struct{}{}

	sc := bufio.NewScanner(bytes.NewReader(corpusData))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set := strings.Split(line, "\t")
		for i, w := range set {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			m := merged[w]
			if m == nil {
				m = map[string]struct{}{}
				merged[w] = m
			}
			for j, other := range set {
				other = strings.ToLower(strings.TrimSpace(other))
				if j == i || other == "" {
					continue
				}
				m[other] = struct{}{}
			}
		}
	}

	for w, m := range merged {
		syns := make([]string, 0, len(m))
		for s := range m {
			syns = append(syns, s)
		}
		sort.Strings(syns)
		c.sets[w] = syns
	}
}

// Expand returns tokens plus every synonym of each token, lower-cased and
// deduplicated. Used for destination matching only; the rendered filename is
// never expanded.
func Expand(t Thesaurus, tokens []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(tokens))
	add := func(w string) {
		w = strings.ToLower(w)
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	for _, tok := range tokens {
		add(tok)
		if t == nil {
			continue
		}
		for _, s := range t.Synonyms(tok) {
			add(s)
		}
	}
	return out
}
