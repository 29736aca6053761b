// Package config holds runtime configuration: defaults, TOML file loading,
// per-project overrides, and validation. Settings resolve in three layers:
// built-in defaults, then the config file's top-level keys, then the keys a
// [projects.<name>] table sets for itself. CLI flags are applied on top by
// the cli package.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// --- Enum types for validated string fields ---

// Separator selects the character used between words in a rendered filename.
type Separator string

const (
	SepIgnore     Separator = "ignore"     // Keep the original separators (default).
	SepUnderscore Separator = "underscore" // Join words with "_".
	SepSpace      Separator = "space"      // Join words with " ".
	SepDash       Separator = "dash"       // Join words with "-".
	SepNone       Separator = "none"       // Join words with no separator.
)

// Char returns the literal separator character. SepIgnore has no fixed
// character; callers keep whatever separators the name already uses.
func (s Separator) Char() string {
	switch s {
	case SepUnderscore:
		return "_"
	case SepSpace:
		return " "
	case SepDash:
		return "-"
	default:
		return ""
	}
}

// SuffixChar returns the separator used before a uniqueness suffix
// ("notes_1.txt"). SepIgnore falls back to underscore so the suffix never
// fuses with the stem.
func (s Separator) SuffixChar() string {
	switch s {
	case SepSpace:
		return " "
	case SepDash:
		return "-"
	case SepNone:
		return ""
	default:
		return "_"
	}
}

// DateChar returns the separator placed between a date prefix and the stem.
// SepIgnore falls back to a space.
func (s Separator) DateChar() string {
	if s == SepIgnore {
		return " "
	}
	return s.Char()
}

// TransformCase selects the case transform applied to non-protected words.
type TransformCase string

const (
	CaseIgnore   TransformCase = "ignore"   // Leave casing untouched (default).
	CaseLower    TransformCase = "lower"    // all lowercase
	CaseUpper    TransformCase = "upper"    // ALL UPPERCASE
	CaseTitle    TransformCase = "title"    // Every Word Capitalized
	CaseCamel    TransformCase = "camel"    // WordsJoinedWithoutSeparators
	CaseSentence TransformCase = "sentence" // First word capitalized only
)

// ProjectKind discriminates how a project's folder tree is interpreted.
type ProjectKind string

const (
	KindJohnnyDecimal ProjectKind = "jd"     // NN-NN category / NN area / NN.NN id folders.
	KindFolder        ProjectKind = "folder" // Plain directories up to Depth levels.
)

// ParseSeparator converts a config or flag string to a Separator.
func ParseSeparator(s string) (Separator, error) {
	switch Separator(strings.ToLower(s)) {
	case SepIgnore, SepUnderscore, SepSpace, SepDash, SepNone:
		return Separator(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("invalid separator %q (use ignore, underscore, space, dash, or none)", s)
}

// ParseTransformCase converts a config or flag string to a TransformCase.
func ParseTransformCase(s string) (TransformCase, error) {
	switch TransformCase(strings.ToLower(s)) {
	case CaseIgnore, CaseLower, CaseUpper, CaseTitle, CaseCamel, CaseSentence:
		return TransformCase(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("invalid case transform %q (use lower, upper, title, camel, sentence, or ignore)", s)
}

// ParseProjectKind converts a config string to a ProjectKind.
func ParseProjectKind(s string) (ProjectKind, error) {
	switch ProjectKind(strings.ToLower(s)) {
	case KindJohnnyDecimal, KindFolder:
		return ProjectKind(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("invalid project type %q (use 'jd' or 'folder')", s)
}

// Settings holds one fully resolved set of normalization options. A value of
// this type is immutable for the duration of a run; per-project overrides are
// resolved into a fresh copy at load time.
type Settings struct {
	CleanFilenames    bool
	DateFormat        string // strftime-style, e.g. "%Y-%m-%d".
	FormatDates       bool
	IgnoreDotfiles    bool
	IgnoredFiles      []string
	IgnoreFileRegex   string
	MatchCaseList     []string // Protected-case terms, preserved verbatim.
	OverwriteExisting bool
	Separator         Separator
	SplitWords        bool
	Stopwords         []string // Extra stopwords on top of the built-in list.
	StripStopwords    bool
	TransformCase     TransformCase
	UseSynonyms       bool
}

// Project describes one organizing target. Read-only after Load.
type Project struct {
	Name     string
	Path     string
	Kind     ProjectKind
	Depth    int // Matching depth for KindFolder; ignored for KindJohnnyDecimal.
	Settings Settings
}

// Config is the top-level resolved configuration for a run.
type Config struct {
	Defaults Settings
	Projects map[string]*Project
}

// DefaultSettings returns the built-in defaults applied before any config
// file or flag is consulted.
func DefaultSettings() Settings {
	return Settings{
		CleanFilenames: true,
		DateFormat:     "%Y-%m-%d",
		IgnoreDotfiles: true,
		Separator:      SepIgnore,
		StripStopwords: true,
		TransformCase:  CaseIgnore,
	}
}

var rePureNumber = regexp.MustCompile(`^[0-9]+$`)

// Validate checks enum fields, the ignore regex, and stopword entries.
// Pure-number stopwords are rejected outright: stripping them would destroy
// meaningful numeric tokens such as Johnny Decimal codes.
func (s *Settings) Validate() error {
	if _, err := ParseSeparator(string(s.Separator)); err != nil {
		return err
	}
	if _, err := ParseTransformCase(string(s.TransformCase)); err != nil {
		return err
	}
	if s.IgnoreFileRegex != "" {
		if _, err := regexp.Compile(s.IgnoreFileRegex); err != nil {
			return fmt.Errorf("invalid ignore_file_regex: %w", err)
		}
	}
	for _, w := range s.Stopwords {
		if rePureNumber.MatchString(w) {
			return fmt.Errorf("invalid stopword %q: purely numeric stopwords are not allowed", w)
		}
	}
	return nil
}

// IgnoreRegexp returns the compiled ignore_file_regex, or nil when unset.
// Validate must have been called first.
func (s *Settings) IgnoreRegexp() *regexp.Regexp {
	if s.IgnoreFileRegex == "" {
		return nil
	}
	return regexp.MustCompile(s.IgnoreFileRegex)
}

// Project returns the named project or an error listing the known names.
func (c *Config) Project(name string) (*Project, error) {
	if p, ok := c.Projects[name]; ok {
		return p, nil
	}
	known := make([]string, 0, len(c.Projects))
	for n := range c.Projects {
		known = append(known, n)
	}
	if len(known) == 0 {
		return nil, errors.New("no projects defined in the configuration file")
	}
	return nil, fmt.Errorf("unknown project %q (configured: %s)", name, strings.Join(known, ", "))
}
