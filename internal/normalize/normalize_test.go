package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidyfile/tidyfile/internal/config"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name string
		stem string
		ext  string
	}{
		{"report.pdf", "report", ".pdf"},
		{"archive.tar.gz", "archive", ".tar.gz"},
		{"backup.TAR.GZ", "backup", ".TAR.GZ"},
		{"noext", "noext", ""},
		{".gitignore", ".gitignore", ""},
		{".config.toml", ".config", ".toml"},
		{"a.b.c.txt", "a.b.c", ".txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitName(tt.name)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".jpg", Ext(".JPEG"))
	assert.Equal(t, ".jpg", Ext(".jpeg"))
	assert.Equal(t, ".pdf", Ext(".PDF"))
	assert.Equal(t, ".html", Ext(".htm"))
	assert.Equal(t, ".tar.gz", Ext(".TAR.GZ"))
}

func TestSplitCamel(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		protected []string
		want      string
	}{
		{name: "basic", in: "someCamelCase", want: "some Camel Case"},
		{name: "leading upper", in: "DepartmentBudget", want: "Department Budget"},
		{name: "all upper untouched", in: "WIP", want: "WIP"},
		{name: "acronym boundary", in: "JDFile", want: "JD File"},
		{name: "already split", in: "some Camel Case", want: "some Camel Case"},
		{name: "protected term restored", in: "QuickBooks", protected: []string{"QuickBooks"}, want: "QuickBooks"},
		{name: "protected inside string", in: "2022_QuickBooks_export", protected: []string{"QuickBooks"}, want: "2022_QuickBooks_export"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCamel(tt.in, tt.protected))
		})
	}
}

func TestStripStopwords(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		extra     []string
		protected []string
		want      string
	}{
		{name: "single stopword", in: "financials and budget", want: "financials  budget"},
		{name: "nothing to strip", in: "financials budget", want: "financials budget"},
		{name: "case-insensitive", in: "The Budget", want: "Budget"},
		{name: "extra stopword", in: "acme corp budget", extra: []string{"acme"}, want: "corp budget"},
		{name: "protected exempt", in: "IT budget", protected: []string{"IT"}, want: "IT budget"},
		{name: "all stopwords keeps original", in: "the and of", want: "the and of"},
		{name: "numbers survive", in: "11 and 12", want: "11  12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripStopwords(tt.in, tt.extra, tt.protected))
		})
	}
}

func TestStripSpecial(t *testing.T) {
	assert.Equal(t, "foo bar-baz_123", StripSpecial("foo bar-baz_123"))
	assert.Equal(t, "Project_mockups WIP ", StripSpecial("Project_mockups(WIP)"))
	assert.Equal(t, " foo bar  baz 123", StripSpecial("%foo~bar!@baz:123"))
}

func TestTransformCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		tc   config.TransformCase
		want string
	}{
		{name: "lower", in: "Some WORDS", tc: config.CaseLower, want: "some words"},
		{name: "upper", in: "some words", tc: config.CaseUpper, want: "SOME WORDS"},
		{name: "title", in: "department FINANCIALS budget", tc: config.CaseTitle, want: "Department Financials Budget"},
		{name: "title idempotent", in: "Department Financials Budget", tc: config.CaseTitle, want: "Department Financials Budget"},
		{name: "camel", in: "some words here", tc: config.CaseCamel, want: "SomeWordsHere"},
		{name: "camel keeps interior caps", in: "project WIP notes", tc: config.CaseCamel, want: "ProjectWIPNotes"},
		{name: "camel idempotent", in: "SomeWordsHere", tc: config.CaseCamel, want: "SomeWordsHere"},
		{name: "sentence", in: "SOME words HERE", tc: config.CaseSentence, want: "Some words here"},
		{name: "ignore", in: "mIxEd CaSe", tc: config.CaseIgnore, want: "mIxEd CaSe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformCase(tt.in, tt.tc))
		})
	}
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "IT budget", MatchCase("it budget", []string{"IT"}))
	assert.Equal(t, "Quarterly IT Review", MatchCase("Quarterly It Review", []string{"IT"}))
	assert.Equal(t, "QuickBooks export", MatchCase("quickbooks export", []string{"QuickBooks"}))
	assert.Equal(t, "no change", MatchCase("no change", []string{"IT"}))
}

func TestNormalizeSeparators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  config.Separator
		want string
	}{
		{name: "space", in: "a_b-c.d  e", sep: config.SepSpace, want: "a b c d e"},
		{name: "dash", in: "a_b c", sep: config.SepDash, want: "a-b-c"},
		{name: "underscore", in: "a-b c", sep: config.SepUnderscore, want: "a_b_c"},
		{name: "none", in: "a-b_c d", sep: config.SepNone, want: "abcd"},
		{name: "ignore collapses runs", in: "word----word__x", sep: config.SepIgnore, want: "word-word_x"},
		{name: "ignore keeps first of mixed run", in: "a -_b", sep: config.SepIgnore, want: "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSeparators(tt.in, tt.sep))
		})
	}
}

func TestClean(t *testing.T) {
	titleSettings := config.DefaultSettings()
	titleSettings.TransformCase = config.CaseTitle

	spaceSettings := config.DefaultSettings()
	spaceSettings.Separator = config.SepSpace

	tests := []struct {
		name     string
		stem     string
		settings config.Settings
		want     string
	}{
		{
			name:     "stopwords and title case",
			stem:     "department financials and budget",
			settings: titleSettings,
			want:     "Department Financials Budget",
		},
		{
			name:     "specials replaced and separators normalized",
			stem:     "Project_mockups(WIP)___",
			settings: spaceSettings,
			want:     "Project mockups WIP",
		},
		{
			name:     "default passthrough",
			stem:     "quarterly-budget-report",
			settings: config.DefaultSettings(),
			want:     "quarterly-budget-report",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.stem, tt.settings)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Clean(got, tt.settings), "cleaning must be idempotent")
		})
	}
}

func TestMatchTerms(t *testing.T) {
	assert.Equal(t, []string{"John", "Jane", "meeting", "notes"}, MatchTerms("John&Jane-meeting-notes"))
	assert.Equal(t, []string{"some", "Camel", "Case"}, MatchTerms("someCamelCase"))
	// Single letters and pure numbers are not usable matching terms.
	assert.Equal(t, []string{"budget"}, MatchTerms("a 11 budget 2023"))
}
