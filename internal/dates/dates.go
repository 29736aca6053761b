package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Found is one date located in a stem. Matched is the literal substring the
// winning rule consumed; it is empty when the date came from file metadata
// rather than the name itself.
type Found struct {
	Date    time.Time
	Matched string
	Rule    string
}

// Extractor scans stems against the rule table. Now is swappable so tests
// and relative phrases ("yesterday") are deterministic.
type Extractor struct {
	Now func() time.Time
}

// NewExtractor returns an Extractor using wall-clock time.
func NewExtractor() *Extractor {
	return &Extractor{Now: time.Now}
}

// Extract locates the first date in stem by rule priority. A rule whose
// regex matches but whose fields do not form a real calendar date is skipped
// and the next rule is tried.
func (e *Extractor) Extract(stem string) (Found, bool) {
	now := e.Now()
	for _, r := range rules {
		m := r.Pattern.FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		g := groups{}
		for i, name := range r.Pattern.SubexpNames() {
			if name != "" && i < len(m) {
				g[name] = m[i]
			}
		}
		d, ok := r.Make(g, now)
		if !ok {
			continue
		}
		return Found{Date: d, Matched: g["found"], Rule: r.Name}, true
	}
	return Found{}, false
}

var reBareYear = regexp.MustCompile(`(^|[^0-9])` + fragYear + `([^0-9]|$)`)

// Remove deletes every occurrence of the matched date string from stem, then
// strips any leftover standalone year tokens so a stray "2023" does not
// survive next to the extracted date. No-op when the date did not come from
// the stem.
func Remove(stem string, f Found) string {
	if f.Matched == "" {
		return stem
	}
	out := strings.ReplaceAll(stem, f.Matched, "")
	for {
		next := reBareYear.ReplaceAllString(out, "$1$2")
		if next == out {
			return out
		}
		out = next
	}
}

// Format renders a date with a strftime-style layout ("%Y-%m-%d").
func Format(t time.Time, layout string) string {
	return strftime.Format(layout, t)
}
