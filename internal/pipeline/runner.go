package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidyfile/tidyfile/internal/config"
	"github.com/tidyfile/tidyfile/internal/dates"
	"github.com/tidyfile/tidyfile/internal/display"
	"github.com/tidyfile/tidyfile/internal/logging"
	"github.com/tidyfile/tidyfile/internal/match"
	"github.com/tidyfile/tidyfile/internal/normalize"
	"github.com/tidyfile/tidyfile/internal/planner"
	"github.com/tidyfile/tidyfile/internal/project"
	"github.com/tidyfile/tidyfile/internal/prompt"
	"github.com/tidyfile/tidyfile/internal/words"
)

// Outcome classifies what happened to one file.
type Outcome int

const (
	OutcomeUnchanged Outcome = iota // Name and location already correct.
	OutcomeChanged                  // Renamed or moved, or would be in dry-run.
	OutcomeAmbiguous                // Multiple destinations and no selection made.
	OutcomeNoMatch                  // Organizing requested but no folder matched.
	OutcomeFailed
)

// Result is the outcome for a single file.
type Result struct {
	Source  string
	Plan    planner.Plan
	Outcome Outcome
	Matches []match.Match // Candidate destinations, best first.
	Err     error
}

// Picker resolves an ambiguous match. It receives the rendered filename and
// the candidate folders and returns the chosen tree index; ok is false when
// the file should be skipped instead.
type Picker func(filename string, choices []prompt.Choice) (index int, ok bool, err error)

// Options configures a Runner for one invocation.
type Options struct {
	Settings config.Settings
	Tree     *project.Tree // Destination tree; nil disables matching.
	Terms    []string      // User-supplied terms added to the token set.
	Number   string        // Explicit destination folder code.
	Force    bool          // Take the best match without prompting.
	DryRun   bool
}

// Runner processes files one at a time. The allocator is shared across the
// whole run so a batch never plans two files onto the same destination.
type Runner struct {
	opts    Options
	log     *logging.Logger
	extract *dates.Extractor
	alloc   *planner.Allocator
	matcher *match.Matcher
	pick    Picker
}

// New builds a Runner. The default picker is the interactive terminal one.
func New(opts Options, log *logging.Logger) *Runner {
	r := &Runner{
		opts:    opts,
		log:     log,
		extract: dates.NewExtractor(),
		alloc:   planner.NewAllocator(),
		pick:    prompt.SelectFolder,
	}
	if opts.Tree != nil {
		r.matcher = &match.Matcher{Tree: opts.Tree}
		if opts.Settings.UseSynonyms {
			r.matcher.Thesaurus = words.DefaultCorpus()
		}
	}
	return r
}

// SetPicker replaces the interactive folder picker.
func (r *Runner) SetPicker(p Picker) { r.pick = p }

// Process runs one file through the chain and returns its result without
// touching the filesystem.
func (r *Runner) Process(path string) Result {
	res := Result{Source: path}
	s := r.opts.Settings

	stem, ext := normalize.SplitName(filepath.Base(path))
	dotfile := strings.HasPrefix(stem, ".")
	work := strings.TrimPrefix(stem, ".")

	// An id code in the original name routes directly, like an explicit
	// number flag. Checked before date handling, which would otherwise
	// read "11.01" as a month and day.
	routed := ""
	if r.matcher != nil && r.opts.Number == "" {
		if code := reFolderCode.FindString(stem); code != "" {
			if i, ok := r.opts.Tree.ByNumber(code); ok {
				res.Matches = []match.Match{{Folder: i, Exact: true, Score: 1}}
				routed = r.opts.Tree.Nodes[i].Path
			}
		}
	}

	// Dates found in the name are always reformatted; the file's own
	// modification time fills in only when date formatting was requested.
	var found dates.Found
	hasDate := false
	if s.CleanFilenames || s.FormatDates {
		if f, ok := r.extract.Extract(work); ok {
			found, hasDate = f, true
			work = dates.Remove(work, f)
		} else if s.FormatDates {
			if fi, err := os.Lstat(path); err == nil {
				found, hasDate = dates.Found{Date: fi.ModTime()}, true
			}
		}
	}

	if s.CleanFilenames {
		work = normalize.Clean(work, s)
		ext = normalize.Ext(ext)
	}
	if hasDate && s.DateFormat != "" {
		stamp := dates.Format(found.Date, s.DateFormat)
		if work == "" {
			work = stamp
		} else {
			work = stamp + s.Separator.DateChar() + work
		}
	}
	if work == "" {
		// Cleaning erased the whole stem; keep the original name.
		work = strings.TrimPrefix(stem, ".")
	}
	if dotfile {
		work = "." + work
	}

	dir := filepath.Dir(path)
	switch {
	case routed != "":
		dir = routed
	case r.matcher != nil:
		var ok bool
		dir, ok = r.destination(&res, work+ext)
		if !ok {
			return res
		}
	}

	res.Plan = r.alloc.Allocate(path, dir, work, ext, s.Separator, s.OverwriteExisting)
	res.Outcome = OutcomeChanged
	if res.Plan.NoOp {
		res.Outcome = OutcomeUnchanged
	}
	return res
}

// reFolderCode recognizes an id folder code ("11.01") inside a filename.
// Category and area codes are too date-like to trigger routing on their own.
var reFolderCode = regexp.MustCompile(`\b\d{2}\.\d{2}\b`)

// destination picks the target directory for one rendered filename. ok is
// false when res already carries a terminal outcome.
func (r *Runner) destination(res *Result, filename string) (string, bool) {
	tree := r.opts.Tree

	if r.opts.Number != "" {
		m, err := r.matcher.ByNumber(r.opts.Number)
		if err != nil {
			res.Outcome, res.Err = OutcomeFailed, err
			return "", false
		}
		res.Matches = []match.Match{m}
		return tree.Nodes[m.Folder].Path, true
	}

	tokens := normalize.MatchTerms(filename)
	matches := r.matcher.Match(tokens, r.opts.Terms)
	res.Matches = matches
	switch {
	case len(matches) == 0:
		res.Outcome = OutcomeNoMatch
		return "", false
	case len(matches) == 1 || r.opts.Force:
		return tree.Nodes[matches[0].Folder].Path, true
	}

	// Dry runs never prompt; an ambiguous file is reported and left alone.
	if r.opts.DryRun {
		res.Outcome = OutcomeAmbiguous
		return "", false
	}

	choices := make([]prompt.Choice, len(matches))
	for i, m := range matches {
		choices[i] = prompt.Choice{
			Label: tree.RelPath(m.Folder),
			Terms: strings.Join(m.Terms, ", "),
			Value: m.Folder,
		}
	}
	idx, picked, err := r.pick(filename, choices)
	if err != nil {
		res.Outcome, res.Err = OutcomeFailed, err
		return "", false
	}
	if !picked {
		res.Outcome = OutcomeAmbiguous
		return "", false
	}
	return tree.Nodes[idx].Path, true
}

// Run processes and applies every path in order. A cancelled context stops
// the run early, keeping what was already applied.
func (r *Runner) Run(ctx context.Context, paths []string) Stats {
	var stats Stats
	for _, p := range paths {
		if ctx.Err() != nil {
			r.log.Warn("interrupted after %d of %d files", stats.Total, len(paths))
			break
		}
		res := r.Process(p)
		if res.Outcome == OutcomeChanged {
			if err := r.Apply(res.Plan); err != nil {
				res.Outcome, res.Err = OutcomeFailed, err
			}
		}
		r.report(res)
		stats.record(res)
	}
	return stats
}

func (r *Runner) report(res Result) {
	base := filepath.Base(res.Source)
	switch res.Outcome {
	case OutcomeUnchanged:
		r.log.Debug("%s: no change", base)
	case OutcomeChanged:
		if r.opts.DryRun {
			r.log.DryRun("%s", changeLine(res.Plan))
		} else {
			r.log.Success("%s", changeLine(res.Plan))
		}
	case OutcomeNoMatch:
		r.log.Warn("%s: no matching folder, skipped", base)
	case OutcomeAmbiguous:
		r.log.Warn("%s: multiple folders match, skipped", base)
	case OutcomeFailed:
		r.log.Error("%s: %v", base, res.Err)
	}
}

// changeLine renders one change: an in-place rename shows a character diff,
// a move shows the full destination.
func changeLine(p planner.Plan) string {
	if filepath.Dir(p.Source) == filepath.Dir(p.Dest) {
		return display.Diff(filepath.Base(p.Source), filepath.Base(p.Dest))
	}
	return filepath.Base(p.Source) + " -> " + p.Dest
}
