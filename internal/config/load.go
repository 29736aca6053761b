package config

// This file implements TOML config loading. File keys are pointer-typed so a
// [projects.<name>] table shadows exactly the keys it sets; everything else
// inherits the resolved top-level values.

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileSettings mirrors Settings with optional fields for layered merging.
type fileSettings struct {
	CleanFilenames    *bool    `toml:"clean_filenames"`
	DateFormat        *string  `toml:"date_format"`
	FormatDates       *bool    `toml:"format_dates"`
	IgnoreDotfiles    *bool    `toml:"ignore_dotfiles"`
	IgnoredFiles      []string `toml:"ignored_files"`
	IgnoreFileRegex   *string  `toml:"ignore_file_regex"`
	MatchCaseList     []string `toml:"match_case_list"`
	OverwriteExisting *bool    `toml:"overwrite_existing"`
	Separator         *string  `toml:"separator"`
	SplitWords        *bool    `toml:"split_words"`
	Stopwords         []string `toml:"stopwords"`
	StripStopwords    *bool    `toml:"strip_stopwords"`
	TransformCase     *string  `toml:"transform_case"`
	UseSynonyms       *bool    `toml:"use_synonyms"`
}

type fileProject struct {
	fileSettings
	Path  string `toml:"path"`
	Type  string `toml:"type"`
	Depth int    `toml:"depth"`
}

type fileConfig struct {
	fileSettings
	Projects map[string]fileProject `toml:"projects"`
}

// DefaultPath returns the per-user config file location
// (~/.config/tidyfile/config.toml on Linux).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tidyfile", "config.toml")
}

// Load reads and validates the config file at path. A missing file is not an
// error when path is the default location: built-in defaults apply and no
// projects are defined. All validation failures surface here, before any
// file is processed.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Defaults: DefaultSettings(),
		Projects: map[string]*Project{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath() {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	if err := applySettings(&cfg.Defaults, fc.fileSettings); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for name, fp := range fc.Projects {
		p, err := buildProject(name, fp, cfg.Defaults)
		if err != nil {
			return nil, fmt.Errorf("%s: project %q: %w", path, name, err)
		}
		cfg.Projects[name] = p
	}
	return cfg, nil
}

// applySettings copies the set (non-nil) keys of fs over s.
func applySettings(s *Settings, fs fileSettings) error {
	if fs.CleanFilenames != nil {
		s.CleanFilenames = *fs.CleanFilenames
	}
	if fs.DateFormat != nil {
		s.DateFormat = *fs.DateFormat
	}
	if fs.FormatDates != nil {
		s.FormatDates = *fs.FormatDates
	}
	if fs.IgnoreDotfiles != nil {
		s.IgnoreDotfiles = *fs.IgnoreDotfiles
	}
	if fs.IgnoredFiles != nil {
		s.IgnoredFiles = append([]string(nil), fs.IgnoredFiles...)
	}
	if fs.IgnoreFileRegex != nil {
		s.IgnoreFileRegex = *fs.IgnoreFileRegex
	}
	if fs.MatchCaseList != nil {
		s.MatchCaseList = append([]string(nil), fs.MatchCaseList...)
	}
	if fs.OverwriteExisting != nil {
		s.OverwriteExisting = *fs.OverwriteExisting
	}
	if fs.Separator != nil {
		sep, err := ParseSeparator(*fs.Separator)
		if err != nil {
			return err
		}
		s.Separator = sep
	}
	if fs.SplitWords != nil {
		s.SplitWords = *fs.SplitWords
	}
	if fs.Stopwords != nil {
		s.Stopwords = append([]string(nil), fs.Stopwords...)
	}
	if fs.StripStopwords != nil {
		s.StripStopwords = *fs.StripStopwords
	}
	if fs.TransformCase != nil {
		tc, err := ParseTransformCase(*fs.TransformCase)
		if err != nil {
			return err
		}
		s.TransformCase = tc
	}
	if fs.UseSynonyms != nil {
		s.UseSynonyms = *fs.UseSynonyms
	}
	return nil
}

func buildProject(name string, fp fileProject, defaults Settings) (*Project, error) {
	if fp.Path == "" {
		return nil, fmt.Errorf("missing required key 'path'")
	}
	root, err := expandPath(fp.Path)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("project path does not exist: %s", root)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("project path is not a directory: %s", root)
	}

	kind := KindJohnnyDecimal
	if fp.Type != "" {
		if kind, err = ParseProjectKind(fp.Type); err != nil {
			return nil, err
		}
	}
	depth := fp.Depth
	if depth <= 0 {
		depth = 2
	}

	settings := defaults
	if err := applySettings(&settings, fp.fileSettings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Project{
		Name:     name,
		Path:     root,
		Kind:     kind,
		Depth:    depth,
		Settings: settings,
	}, nil
}

// expandPath resolves a leading "~" and returns an absolute path.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// ProjectNames returns the configured project names in sorted order.
func (c *Config) ProjectNames() []string {
	names := make([]string, 0, len(c.Projects))
	for n := range c.Projects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
