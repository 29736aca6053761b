package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/tidyfile/tidyfile/internal/config"
	"github.com/tidyfile/tidyfile/internal/project"
)

// Discover expands the given paths into the sorted list of files to process.
// Directory arguments are walked recursively with the configured skip rules;
// explicitly named files bypass those rules, except marker files, which are
// never processed.
func Discover(paths []string, s config.Settings) ([]string, error) {
	ignoreRe := s.IgnoreRegexp()
	seen := map[string]struct{}{}
	var out []string
	add := func(p string) {
		if _, dup := seen[p]; !dup {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		fi, err := os.Stat(abs)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			if filepath.Base(abs) != project.MarkerFile {
				add(abs)
			}
			continue
		}

		root := abs
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && s.IgnoreDotfiles && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}
			if !ignored(d.Name(), s, ignoreRe) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(out)
	return out, nil
}

// ignored applies the configured skip rules to a single file name.
func ignored(name string, s config.Settings, re *regexp.Regexp) bool {
	if name == project.MarkerFile {
		return true
	}
	if s.IgnoreDotfiles && strings.HasPrefix(name, ".") {
		return true
	}
	if slices.Contains(s.IgnoredFiles, name) {
		return true
	}
	return re != nil && re.MatchString(name)
}
