// Package cli wires the cobra command tree: the root clean/organize command,
// the tree and check subcommands, and flag-over-config resolution.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tidyfile/tidyfile/internal/check"
	"github.com/tidyfile/tidyfile/internal/config"
	"github.com/tidyfile/tidyfile/internal/logging"
	"github.com/tidyfile/tidyfile/internal/pipeline"
)

// version is set at build time via -ldflags.
var version = "dev"

// errRunFailures marks a run in which some files could not be processed.
var errRunFailures = errors.New("some files failed")

// Execute runs the CLI and returns the process exit code: 0 for a clean run,
// 1 when some files failed, 2 for configuration or usage errors.
func Execute() int {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errRunFailures):
		return 1
	default:
		return 2
	}
}

type rootFlags struct {
	configPath string
	project    string
	number     string
	terms      []string
	sep        string
	caseName   string
	dateFormat string
	splitWords bool
	addDate    bool
	noClean    bool
	overwrite  bool
	force      bool
	dryRun     bool
	depth      int
	verbose    bool
	noColor    bool
	logFile    string
	watch      bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "tidyfile [flags] <path>...",
		Short: "Clean filenames and file them into organized folders",
		Long:  `tidyfile normalizes filenames (separators, case, stopwords, dates) and can
route files into a configured project's folder tree by matching filename
words against folder names and marker terms.`,
		Version:      version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, &f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", config.DefaultPath(), "path to the TOML config file")
	fl.StringVarP(&f.project, "project", "p", "", "organize files into this configured project")
	fl.StringVar(&f.number, "number", "", "file into the folder with this code, skipping matching")
	fl.StringSliceVarP(&f.terms, "term", "t", nil, "extra matching terms (repeatable)")
	fl.StringVar(&f.sep, "sep", "", "separator style: ignore, underscore, space, dash, none")
	fl.StringVar(&f.caseName, "case", "", "case transform: lower, upper, title, camel, sentence, ignore")
	fl.BoolVar(&f.splitWords, "split-words", false, "split camel-case words")
	fl.BoolVar(&f.addDate, "add-date", false, "prefix the date, falling back to the file's mtime")
	fl.StringVar(&f.dateFormat, "date-format", "", "strftime-style date format")
	fl.BoolVar(&f.noClean, "no-clean", false, "keep the filename as-is, only file it")
	fl.BoolVar(&f.overwrite, "overwrite", false, "overwrite existing files instead of suffixing")
	fl.BoolVarP(&f.force, "force", "f", false, "take the best match without prompting")
	fl.BoolVarP(&f.dryRun, "dry-run", "n", false, "show changes without renaming anything")
	fl.IntVar(&f.depth, "depth", 0, "matching depth for folder-type projects")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug output")
	fl.BoolVar(&f.noColor, "no-color", false, "disable styled output")
	fl.StringVar(&f.logFile, "log-file", "", "append a plain-text log to this file")
	fl.BoolVarP(&f.watch, "watch", "w", false, "keep running and process files as they appear")

	cmd.AddCommand(newTreeCmd(), newCheckCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, f *rootFlags, args []string) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	settings := cfg.Defaults
	var proj *config.Project
	if f.project != "" {
		if proj, err = cfg.Project(f.project); err != nil {
			return err
		}
		settings = proj.Settings
	} else if f.number != "" {
		return errors.New("--number requires --project")
	}
	if err := applyFlags(&settings, f, cmd.Flags()); err != nil {
		return err
	}

	if f.watch {
		if len(args) != 1 {
			return errors.New("--watch takes exactly one directory")
		}
		if fi, err := os.Stat(args[0]); err != nil || !fi.IsDir() {
			return errors.New("--watch takes exactly one directory")
		}
	}

	log, err := logging.New(logging.Options{Verbose: f.verbose, NoColor: f.noColor, LogFile: f.logFile})
	if err != nil {
		return err
	}
	defer log.Close()

	opts := pipeline.Options{
		Settings: settings,
		Terms:    f.terms,
		Number:   f.number,
		Force:    f.force,
		DryRun:   f.dryRun,
	}
	if proj != nil {
		p := *proj
		if f.depth > 0 {
			p.Depth = f.depth
		}
		if opts.Tree, err = check.Validate(&p); err != nil {
			return err
		}
	}
	runner := pipeline.New(opts, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if f.watch {
		return runner.Watch(ctx, args[0])
	}

	paths, err := pipeline.Discover(args, settings)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Info("nothing to do")
		return nil
	}

	stats := runner.Run(ctx, paths)
	log.Info("%s", stats.Summary())
	if stats.Failed > 0 {
		return errRunFailures
	}
	return nil
}

// applyFlags overlays explicitly set flags onto the resolved settings.
func applyFlags(s *config.Settings, f *rootFlags, fl *pflag.FlagSet) error {
	if fl.Changed("sep") {
		sep, err := config.ParseSeparator(f.sep)
		if err != nil {
			return err
		}
		s.Separator = sep
	}
	if fl.Changed("case") {
		tc, err := config.ParseTransformCase(f.caseName)
		if err != nil {
			return err
		}
		s.TransformCase = tc
	}
	if fl.Changed("split-words") {
		s.SplitWords = f.splitWords
	}
	if fl.Changed("add-date") {
		s.FormatDates = f.addDate
	}
	if fl.Changed("date-format") {
		s.DateFormat = f.dateFormat
	}
	if f.noClean {
		s.CleanFilenames = false
	}
	if fl.Changed("overwrite") {
		s.OverwriteExisting = f.overwrite
	}
	return s.Validate()
}
