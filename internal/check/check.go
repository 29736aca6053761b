// Package check provides configuration diagnostics (the check subcommand)
// and pre-run project validation.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidyfile/tidyfile/internal/config"
	"github.com/tidyfile/tidyfile/internal/project"
	"github.com/tidyfile/tidyfile/internal/words"
)

// Sentinel errors returned by Validate when a project cannot be used.
var (
	ErrMissingRoot    = errors.New("project root does not exist")
	ErrNoUsableFolder = errors.New("project has no usable folders")
)

// Logger is the minimal logging interface needed by Run. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
}

// Run prints diagnostics for the loaded configuration: default settings,
// the embedded thesaurus, and every configured project. Informational only,
// it reports problems without stopping at the first one.
func Run(cfg *config.Config, log Logger) {
	log.Info("=== Configuration check ===")

	if err := cfg.Defaults.Validate(); err != nil {
		log.Error("defaults: %v", err)
	} else {
		log.Success("defaults valid")
	}

	if len(words.DefaultCorpus().Synonyms("meeting")) == 0 {
		log.Warn("embedded thesaurus is missing or empty")
	} else {
		log.Success("thesaurus loaded")
	}

	if len(cfg.Projects) == 0 {
		log.Warn("no projects configured")
		return
	}
	for _, name := range cfg.ProjectNames() {
		checkProject(cfg.Projects[name], log)
	}
}

// checkProject reports one project's root, tree size, and marker coverage.
func checkProject(p *config.Project, log Logger) {
	log.Info("project %q (%s, %s)", p.Name, p.Kind, p.Path)

	fi, err := os.Stat(p.Path)
	if err != nil || !fi.IsDir() {
		log.Error("  root missing: %s", p.Path)
		return
	}
	tree, err := project.Build(p)
	if err != nil {
		log.Error("  cannot build tree: %v", err)
		return
	}
	usable := tree.Usable()
	if len(usable) == 0 {
		log.Warn("  no usable folders (no filing-level folders or marker files)")
		return
	}
	markers := 0
	for _, i := range usable {
		if _, err := os.Stat(filepath.Join(tree.Nodes[i].Path, project.MarkerFile)); err == nil {
			markers++
		}
	}
	log.Success("  %d folders, %d usable, %d with marker terms", len(tree.Nodes), len(usable), markers)
}

// Validate is the pre-run gate for organizing into a project: the root must
// exist and the tree must expose at least one usable folder. The built tree
// is returned so the caller does not walk the root twice.
func Validate(p *config.Project) (*project.Tree, error) {
	fi, err := os.Stat(p.Path)
	if err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingRoot, p.Path)
	}
	tree, err := project.Build(p)
	if err != nil {
		return nil, err
	}
	if len(tree.Usable()) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoUsableFolder, p.Name)
	}
	return tree, nil
}
