package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tidyfile/tidyfile/internal/config"
	"github.com/tidyfile/tidyfile/internal/words"
)

var (
	reSeparators  = regexp.MustCompile(`[-_ .]+`)
	reSepRun      = regexp.MustCompile(`([-_ .])[-_ .]+`)
	reSpecial     = regexp.MustCompile(`[^\w -]`)
	reWordRun     = regexp.MustCompile(`[A-Za-z0-9]+`)
	reMatchTerm   = regexp.MustCompile(`(?i)^\d*[a-z]+\d*[a-z]+\d*$`)
	trimCutset    = " -_."
	sepTrimCutset = " -_"
)

// Clean runs the full stem cleanup: camel-case splitting, stopword removal,
// special-character stripping, case transform, protected-case restoration,
// and separator normalization. Date handling happens before and after this
// call, in the pipeline.
func Clean(stem string, s config.Settings) string {
	out := stem
	if s.SplitWords {
		out = SplitCamel(out, s.MatchCaseList)
	}
	if s.StripStopwords {
		out = StripStopwords(out, s.Stopwords, s.MatchCaseList)
	}
	out = StripSpecial(out)
	out = TransformCase(out, s.TransformCase)
	out = MatchCase(out, s.MatchCaseList)
	out = NormalizeSeparators(out, s.Separator)
	return strings.Trim(out, trimCutset)
}

// Tokenize splits a stem on separator runs into its words.
func Tokenize(s string) []string {
	var out []string
	for _, w := range reSeparators.Split(s, -1) {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// MatchTerms returns the tokens of stem usable for destination matching:
// camel-case boundaries split, special characters stripped, and tokens that
// are single letters or pure numbers dropped.
func MatchTerms(stem string) []string {
	var out []string
	for _, w := range Tokenize(StripSpecial(SplitCamel(stem, nil))) {
		if reMatchTerm.MatchString(w) {
			out = append(out, w)
		}
	}
	return out
}

// SplitCamel inserts a space before each upper-to-lower case transition.
// Protected terms that were torn apart by the split are restored verbatim.
func SplitCamel(s string, protected []string) string {
	split := splitCamel(s)
	for _, term := range protected {
		st := splitCamel(term)
		if st == term {
			continue
		}
		re := regexp.MustCompile(`(?i)(^|[-_ \d])` + regexp.QuoteMeta(st) + `([-_ \d]|$)`)
		split = re.ReplaceAllString(split, "${1}"+term+"${2}")
	}
	return split
}

func splitCamel(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) &&
			runes[i-1] != ' ' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripStopwords removes built-in and extra stopwords as whole words,
// case-insensitively. Protected terms are exempt. When removal would leave
// nothing meaningful behind, the input is returned unchanged.
func StripStopwords(s string, extra, protected []string) string {
	out := reWordRun.ReplaceAllStringFunc(s, func(w string) string {
		if words.Removable(w, extra, protected) {
			return ""
		}
		return w
	})
	if strings.Trim(out, sepTrimCutset+".") == "" || len(strings.TrimSpace(out)) <= 1 {
		return s
	}
	return strings.Trim(out, sepTrimCutset)
}

// StripSpecial replaces every character outside letters, digits,
// underscores, spaces, and dashes with a space, so removed punctuation never
// fuses the words around it. Separator normalization collapses the runs this
// leaves behind.
func StripSpecial(s string) string {
	return reSpecial.ReplaceAllString(s, " ")
}

// TransformCase applies the configured case transform to the whole stem.
// The camel transform capitalizes word-initial letters and removes the
// separators without touching interior casing, so an already-camelled stem
// passes through unchanged.
func TransformCase(s string, tc config.TransformCase) string {
	switch tc {
	case config.CaseLower:
		return strings.ToLower(s)
	case config.CaseUpper:
		return strings.ToUpper(s)
	case config.CaseTitle:
		return titleCase(s, true)
	case config.CaseCamel:
		return strings.NewReplacer("-", "", "_", "", " ", "").Replace(titleCase(s, false))
	case config.CaseSentence:
		r := []rune(strings.ToLower(s))
		for i, c := range r {
			if unicode.IsLetter(c) {
				r[i] = unicode.ToUpper(c)
				break
			}
		}
		return string(r)
	default:
		return s
	}
}

// titleCase upper-cases each letter that follows a non-letter. With lowerRest
// set, remaining letters are lower-cased as well.
func titleCase(s string, lowerRest bool) string {
	runes := []rune(s)
	prevLetter := false
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if !prevLetter {
				runes[i] = unicode.ToUpper(r)
			} else if lowerRest {
				runes[i] = unicode.ToLower(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(runes)
}

// MatchCase restores the exact casing of protected terms wherever they occur
// as whole words, regardless of how earlier passes cased them.
func MatchCase(s string, protected []string) string {
	for _, term := range protected {
		re := regexp.MustCompile(`(?i)(^|[-_ ])` + regexp.QuoteMeta(term) + `([-_ ]|$)`)
		s = re.ReplaceAllString(s, "${1}"+term+"${2}")
	}
	return s
}

// NormalizeSeparators rewrites separator runs. With SepIgnore a run collapses
// to its first character; otherwise every run becomes the configured
// separator character.
func NormalizeSeparators(s string, sep config.Separator) string {
	if sep == config.SepIgnore {
		return strings.Trim(reSepRun.ReplaceAllString(s, "$1"), sepTrimCutset)
	}
	return strings.Trim(reSeparators.ReplaceAllString(s, sep.Char()), sepTrimCutset)
}
